package colloc

import (
	"strings"

	"github.com/corey/termo/internal/ports"
)

// Substrings returns every contiguous sub-phrase of the given phrase with
// a word length from n-1 down to 2, longest first, left to right within
// each length. The full phrase and single words are excluded, so phrases
// of fewer than three words yield nothing.
func Substrings(phrase string) []string {
	words := strings.Fields(phrase)
	var substrings []string
	for wcount := len(words) - 1; wcount >= 2; wcount-- {
		for j := 0; j+wcount <= len(words); j++ {
			substrings = append(substrings, strings.Join(words[j:j+wcount], " "))
		}
	}
	return substrings
}

// AssignTags tags a phrase against a precomputed lexicon: each word is a
// plain table lookup, in phrase order. Words missing from the lexicon are
// skipped, which shortens the result and makes a later positional
// comparison fail on word count rather than on a fabricated reading.
func AssignTags(lexicon ports.Lexicon, phrase string) []ports.TaggedWord {
	words := strings.Fields(phrase)
	tagged := make([]ports.TaggedWord, 0, len(words))
	for _, w := range words {
		if reading, ok := lexicon.Lookup(w); ok {
			tagged = append(tagged, *reading)
		}
	}
	return tagged
}

// LongerTerms finds the candidates that embed the query as a
// grammatically identical sub-phrase: "боевой порядок" is contained in
// "построения боевых порядков". The query is tagged through the full
// tagger; candidate substrings of the query's word count are tagged
// against the lexicon. A candidate qualifies when any of its substrings
// is identical to the query.
//
// A substring that fails to tag or compare is recorded as a Diagnostic
// and treated as "not a match" for that substring only.
func LongerTerms(tagger ports.Tagger, lexicon ports.Lexicon, query ports.Collocation, longer []ports.Collocation) ([]ports.Collocation, []Diagnostic, error) {
	tokens, err := tagger.TagPhrase(query.Text)
	if err != nil {
		return nil, nil, err
	}
	taggedQuery := ports.Words(tokens)

	var matches []ports.Collocation
	var diags []Diagnostic
	for _, gram := range longer {
		found := false
		for _, substr := range Substrings(gram.Text) {
			if len(strings.Fields(substr)) != query.WordCount {
				continue
			}
			taggedSub := AssignTags(lexicon, substr)
			same, err := IdenticalTagged(taggedQuery, taggedSub)
			if err != nil {
				diags = append(diags, Diagnostic{Op: "LongerTerms", Item: substr, Err: err})
				continue
			}
			if same {
				found = true
				break
			}
		}
		if found {
			matches = append(matches, gram)
		}
	}
	return matches, diags, nil
}
