// Package colloc implements grammatical identity over Russian noun-phrase
// collocations: deciding whether two inflected surface forms denote the
// same term, selecting the head word of a phrase, and batch deduplication
// of candidate lists. All comparisons are position-sensitive and
// case-insensitive in the grammatical sense — "огонь артиллерии" and
// "огня артиллерии" are the same term.
package colloc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/corey/termo/internal/ports"
)

// isCorrectWord reports whether a token is a plausible word: non-empty and
// consisting of letters only, ignoring internal hyphens
// ("парково-хозяйственный" passes, "сл0во" does not).
func isCorrectWord(word string) bool {
	stripped := strings.ReplaceAll(word, "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IdenticalWords reports whether two raw words are the same lexeme in
// different grammatical cases. Empty input on either side is "not
// identical", not an error. Multi-word input fails with ErrNotAWord;
// non-alphabetic input with ErrBadWord. When the lowered forms differ,
// both words are tagged and their lemmas compared.
func IdenticalWords(tagger ports.Tagger, word1, word2 string) (bool, error) {
	if word1 == "" || word2 == "" {
		return false, nil
	}
	if strings.ContainsRune(word1, ' ') || strings.ContainsRune(word2, ' ') {
		return false, fmt.Errorf("%w: %q, %q", ErrNotAWord, word1, word2)
	}
	if !isCorrectWord(word1) || !isCorrectWord(word2) {
		return false, fmt.Errorf("%w: %q, %q", ErrBadWord, word1, word2)
	}

	word1 = strings.ToLower(word1)
	word2 = strings.ToLower(word2)
	if word1 == word2 {
		return true, nil
	}

	tagged1, err := tagger.TagWord(word1)
	if err != nil {
		return false, err
	}
	tagged2, err := tagger.TagWord(word2)
	if err != nil {
		return false, err
	}
	if tagged1 == nil {
		return false, fmt.Errorf("%w: %q", ErrUntaggable, word1)
	}
	if tagged2 == nil {
		return false, fmt.Errorf("%w: %q", ErrUntaggable, word2)
	}
	return tagged1.Normalized == tagged2.Normalized, nil
}

// IdenticalTaggedWords is the pre-tagged form of IdenticalWords: equal
// readings are identical, otherwise equal lemmas are.
func IdenticalTaggedWords(word1, word2 ports.TaggedWord) bool {
	if word1 == word2 {
		return true
	}
	return word1.Normalized == word2.Normalized
}

// WordInPhrase reports whether the exact surface form occurs in a tagged
// phrase. The check is literal — no lemma comparison.
func WordInPhrase(phrase []ports.TaggedWord, word string) bool {
	for _, w := range phrase {
		if w.Word == word {
			return true
		}
	}
	return false
}
