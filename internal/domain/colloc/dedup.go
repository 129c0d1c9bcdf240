package colloc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/termo/internal/ports"
)

// IndexedPhrase pairs a tagged phrase with its position in the caller's
// candidate list, so batch results can be reported against original
// indices no matter how the traversal partitions the list.
type IndexedPhrase struct {
	Index int
	Words []ports.TaggedWord
}

// IdentityResult is one entry of a batch identity check: the candidate's
// original index and whether it is grammatically identical to the query.
type IdentityResult struct {
	Index     int
	Identical bool
}

// binaryIdentityCheck compares the query against every indexed candidate
// by recursively splitting the list at its midpoint and concatenating the
// half results. The traversal is structural, not an optimization — the
// output is in the same order a direct linear scan would produce, and
// callers may rely on that ordering.
//
// A failing comparison (verb+adverb phrase, empty element) becomes
// Identical=false for that candidate plus a Diagnostic; the batch never
// aborts.
func binaryIdentityCheck(query []ports.TaggedWord, candidates []IndexedPhrase) ([]IdentityResult, []Diagnostic) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) == 1 {
		entry := candidates[0]
		same, err := IdenticalTagged(query, entry.Words)
		if err != nil {
			return []IdentityResult{{Index: entry.Index, Identical: false}},
				[]Diagnostic{{Op: "binaryIdentityCheck", Item: surface(entry.Words), Err: err}}
		}
		return []IdentityResult{{Index: entry.Index, Identical: same}}, nil
	}

	middle := len(candidates) / 2
	firstResults, firstDiags := binaryIdentityCheck(query, candidates[:middle])
	secondResults, secondDiags := binaryIdentityCheck(query, candidates[middle:])
	return append(firstResults, secondResults...), append(firstDiags, secondDiags...)
}

// CountIncludes finds every candidate grammatically identical to the
// query, returning (original index, candidate) pairs in list order along
// with diagnostics for any candidate that could not be compared.
func CountIncludes(query []ports.TaggedWord, candidates [][]ports.TaggedWord) ([]IndexedPhrase, []Diagnostic) {
	indexed := make([]IndexedPhrase, len(candidates))
	for i, c := range candidates {
		indexed[i] = IndexedPhrase{Index: i, Words: c}
	}
	results, diags := binaryIdentityCheck(query, indexed)

	var matches []IndexedPhrase
	for _, r := range results {
		if r.Identical {
			matches = append(matches, IndexedPhrase{Index: r.Index, Words: candidates[r.Index]})
		}
	}
	return matches, diags
}

// InListVar is a case-aware membership test over raw strings: it reports
// whether the phrase, in any grammatical case, occurs in the candidate
// list, and returns the matching list entry.
//
// Every word of the phrase and of every candidate must be alphabetic
// (ErrBadWord). An empty list is "not found" and skips validation. After
// a literal membership check, candidates are compared in lexicographic
// order and the first identical entry wins. The caller's slice is left
// untouched — ordering happens on an owned copy.
func InListVar(tagger ports.Tagger, phrase string, candidates []string) (bool, string, error) {
	if len(candidates) == 0 {
		return false, "", nil
	}
	for _, w := range strings.Fields(phrase) {
		if !isCorrectWord(w) {
			return false, "", fmt.Errorf("%w: %q", ErrBadWord, w)
		}
	}
	for _, c := range candidates {
		for _, w := range strings.Fields(c) {
			if !isCorrectWord(w) {
				return false, "", fmt.Errorf("%w: %q", ErrBadWord, w)
			}
		}
	}

	for _, c := range candidates {
		if c == phrase {
			return true, c, nil
		}
	}

	ordered := make([]string, len(candidates))
	copy(ordered, candidates)
	sort.Strings(ordered)
	for _, c := range ordered {
		same, err := Identical(tagger, phrase, c)
		if err != nil {
			return false, "", err
		}
		if same {
			return true, c, nil
		}
	}
	return false, "", nil
}

// surface rebuilds the space-joined surface text of a tagged phrase for
// diagnostics.
func surface(phrase []ports.TaggedWord) string {
	words := make([]string, len(phrase))
	for i, w := range phrase {
		words[i] = w.Word
	}
	return strings.Join(words, " ")
}
