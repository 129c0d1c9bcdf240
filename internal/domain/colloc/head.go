package colloc

import "github.com/corey/termo/internal/ports"

// MainWord returns the surface form of the grammatical head of a tagged
// phrase — the word the rest of the phrase modifies, used as the anchor
// for identity and normal-form comparison.
//
// An empty phrase yields "" (undetermined, not an error). A phrase that
// mixes verb and adverb tags fails with ErrVerbAdverb. With a single noun
// among the words, that noun is the head regardless of its case. With two
// or more nouns, the first word in nominative or accusative case wins;
// failing that, the first noun. A phrase with no noun at all yields "".
func MainWord(phrase []ports.TaggedWord) (string, error) {
	if len(phrase) == 0 {
		return "", nil
	}

	hasVerb, hasAdverb := false, false
	nouns := 0
	for _, w := range phrase {
		switch w.POS {
		case ports.POSVerb:
			hasVerb = true
		case ports.POSAdverb:
			hasAdverb = true
		case ports.POSNoun:
			nouns++
		}
	}
	if hasVerb && hasAdverb {
		return "", ErrVerbAdverb
	}
	if nouns == 0 {
		return "", nil
	}

	if len(phrase) == 1 {
		return phrase[0].Word, nil
	}

	if nouns == 1 {
		for _, w := range phrase {
			if w.POS == ports.POSNoun {
				return w.Word, nil
			}
		}
	}

	// Two or more nouns: prefer the first word in a direct case,
	// then fall back to the first noun in phrase order.
	for _, w := range phrase {
		if w.Case == ports.CaseNominative || w.Case == ports.CaseAccusative {
			return w.Word, nil
		}
	}
	for _, w := range phrase {
		if w.POS == ports.POSNoun {
			return w.Word, nil
		}
	}
	return "", nil
}
