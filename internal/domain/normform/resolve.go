package normform

import (
	"errors"
	"sort"
	"strings"

	"github.com/corey/termo/internal/domain/colloc"
	"github.com/corey/termo/internal/ports"
)

// DistThreshold is how far above the cluster's minimum normalized
// distance a candidate may sit and still count as a canonical-form
// contender.
const DistThreshold = 0.15

// ErrUnresolved is returned when no candidate passes the distance and
// head-word filters. The caller must treat this as "resolution failed",
// not as a crash.
var ErrUnresolved = errors.New("no candidate qualifies as the normal form")

var yoReplacer = strings.NewReplacer("ё", "е", "Ё", "Е")

// NormalizeYo unifies the ё/е spelling variant by rewriting every ё as е.
func NormalizeYo(s string) string {
	return yoReplacer.Replace(s)
}

func containsYo(s string) bool {
	return strings.ContainsAny(s, "ёЁ")
}

// Resolve picks the canonical representative of a case-variant cluster:
// the candidate whose surface text is closest (by normalized
// Damerau-Levenshtein distance) to the pseudo-normal form, among those
// within DistThreshold of the minimum that also contain the head word as
// a substring. Ties break by ascending distance, stably, so of two
// equally distant candidates the earlier one wins.
//
// Side effect, deliberate and part of the contract: when the head word or
// the pseudo-normal form contains ё, the letter is rewritten as е in the
// head word, the pseudo-normal form, and the surface text of every
// element of candidates before any comparison, so results are identical
// whichever spelling the input used.
//
// Returns the index of the winning candidate, or -1 and ErrUnresolved
// when nothing qualifies.
func Resolve(pseudoNormal, mainWord string, candidates []ports.Collocation) (int, error) {
	if containsYo(pseudoNormal) || containsYo(mainWord) {
		mainWord = NormalizeYo(mainWord)
		pseudoNormal = NormalizeYo(pseudoNormal)
		for i := range candidates {
			candidates[i].Text = NormalizeYo(candidates[i].Text)
		}
	}

	distances := make([]float64, len(candidates))
	minDist := -1.0
	for i, c := range candidates {
		distances[i] = NormalizedDistance(pseudoNormal, c.Text)
		if minDist < 0 || distances[i] < minDist {
			minDist = distances[i]
		}
	}

	type scored struct {
		index int
		dist  float64
	}
	var qualified []scored
	for i, c := range candidates {
		if distances[i]-minDist <= DistThreshold && strings.Contains(c.Text, mainWord) {
			qualified = append(qualified, scored{index: i, dist: distances[i]})
		}
	}
	if len(qualified) == 0 {
		return -1, ErrUnresolved
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].dist < qualified[j].dist
	})
	return qualified[0].index, nil
}

// ReplaceMainWord substitutes the head word from the pseudo-normal form
// into the candidate's surface text at the matching position, producing
// the rewritten record. This is the one sanctioned rewrite of a
// candidate's text after creation. The candidate is returned unchanged
// when the pseudo-normal form does not contain the head word, or when
// the text already does.
func ReplaceMainWord(c ports.Collocation, mainWord string) ports.Collocation {
	if !strings.Contains(c.PseudoNormal, mainWord) || strings.Contains(c.Text, mainWord) {
		return c
	}

	textWords := strings.Split(c.Text, " ")
	pnWords := strings.Split(c.PseudoNormal, " ")
	for i := range textWords {
		if i < len(pnWords) && pnWords[i] == mainWord {
			textWords[i] = mainWord
			break
		}
	}
	c.Text = strings.Join(textWords, " ")
	return c
}

// BiwordNormalForm builds the normal form of a two-word phrase: the head
// word and any adjectives take their lemma, while a dependent word in
// genitive keeps its surface form ("огня артиллерии" → "огонь
// артиллерии"). Other dependents keep their surface form as-is — this
// core has no inflection engine, that stays behind the tagger boundary.
// Phrases of any other length, and phrases without a determinable head,
// yield "".
func BiwordNormalForm(phrase []ports.TaggedWord) string {
	if len(phrase) != 2 {
		return ""
	}
	mainWord, err := colloc.MainWord(phrase)
	if err != nil || mainWord == "" {
		return ""
	}

	normalized := make([]string, 0, len(phrase))
	for _, w := range phrase {
		if w.Word == mainWord || w.POS == ports.POSAdjective {
			normalized = append(normalized, w.Normalized)
		} else {
			normalized = append(normalized, w.Word)
		}
	}
	return strings.Join(normalized, " ")
}
