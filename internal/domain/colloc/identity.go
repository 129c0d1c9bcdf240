package colloc

import (
	"fmt"
	"strings"

	"github.com/corey/termo/internal/ports"
)

// Identical reports whether two raw phrases denote the same term despite
// case inflection. Each side must contain at least two words
// (ErrNotAPhrase), every word must be alphabetic (ErrBadWord), and every
// word must be known to the tagger (ErrUntaggable).
//
// Literal equality short-circuits to true and unequal word counts to
// false. Otherwise both phrases are tagged, their head words compared as
// lexemes, and then every word pair compared positionally — the same
// words in a different order are NOT identical.
func Identical(tagger ports.Tagger, phrase1, phrase2 string) (bool, error) {
	words1 := strings.Fields(phrase1)
	words2 := strings.Fields(phrase2)
	if len(words1) <= 1 || len(words2) <= 1 {
		return false, fmt.Errorf("%w: %q, %q", ErrNotAPhrase, phrase1, phrase2)
	}
	for _, w := range append(append([]string{}, words1...), words2...) {
		if !isCorrectWord(w) {
			return false, fmt.Errorf("%w: %q", ErrBadWord, w)
		}
	}

	if phrase1 == phrase2 {
		return true, nil
	}
	if len(words1) != len(words2) {
		return false, nil
	}

	tokens1, err := tagger.TagPhrase(phrase1)
	if err != nil {
		return false, err
	}
	tokens2, err := tagger.TagPhrase(phrase2)
	if err != nil {
		return false, err
	}
	tagged1 := ports.Words(tokens1)
	tagged2 := ports.Words(tokens2)
	// The tagger drops words it cannot tag, so a reading count short of
	// the raw word count means unknown vocabulary, not a shorter phrase.
	if len(tagged1) != len(words1) || len(tagged2) != len(words2) {
		return false, fmt.Errorf("%w: %q, %q", ErrUntaggable, phrase1, phrase2)
	}

	main1, err := MainWord(tagged1)
	if err != nil {
		return false, err
	}
	main2, err := MainWord(tagged2)
	if err != nil {
		return false, err
	}
	same, err := IdenticalWords(tagger, main1, main2)
	if err != nil || !same {
		return false, err
	}

	for i := range tagged1 {
		same, err := IdenticalWords(tagger, tagged1[i].Word, tagged2[i].Word)
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}
	return true, nil
}

// IdenticalTagged is the fast, pre-tagged variant of Identical: no
// re-tagging, no re-validation, word pairs compared by lemma equality.
// Empty input on either side fails with ErrNotAPhrase.
//
// A head-word failure (verb+adverb phrase, undeterminable head) is
// returned as an error rather than silently treated as a mismatch; batch
// callers convert it to "not a match" and record a Diagnostic, so one bad
// element never aborts a batch.
func IdenticalTagged(phrase1, phrase2 []ports.TaggedWord) (bool, error) {
	if len(phrase1) < 1 || len(phrase2) < 1 {
		return false, fmt.Errorf("%w: %d and %d words", ErrNotAPhrase, len(phrase1), len(phrase2))
	}

	if equalTagged(phrase1, phrase2) {
		return true, nil
	}
	if len(phrase1) != len(phrase2) {
		return false, nil
	}

	main1, err := MainWord(phrase1)
	if err != nil {
		return false, err
	}
	main2, err := MainWord(phrase2)
	if err != nil {
		return false, err
	}
	if main1 == "" || main2 == "" {
		return false, nil
	}
	same, err := identicalMainWords(main1, main2, phrase1, phrase2)
	if err != nil || !same {
		return false, err
	}

	for i := range phrase1 {
		if phrase1[i].Normalized != phrase2[i].Normalized {
			return false, nil
		}
	}
	return true, nil
}

// identicalMainWords compares two head words without consulting a tagger:
// the heads are surface forms of already-tagged phrases, so their lemmas
// are on record.
func identicalMainWords(main1, main2 string, phrase1, phrase2 []ports.TaggedWord) (bool, error) {
	low1, low2 := strings.ToLower(main1), strings.ToLower(main2)
	if low1 == low2 {
		return true, nil
	}
	w1, ok1 := findWord(phrase1, main1)
	w2, ok2 := findWord(phrase2, main2)
	if !ok1 || !ok2 {
		return false, fmt.Errorf("%w: %q, %q", ErrUntaggable, main1, main2)
	}
	return w1.Normalized == w2.Normalized, nil
}

func findWord(phrase []ports.TaggedWord, surface string) (ports.TaggedWord, bool) {
	for _, w := range phrase {
		if w.Word == surface {
			return w, true
		}
	}
	return ports.TaggedWord{}, false
}

func equalTagged(a, b []ports.TaggedWord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
