package morph

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/corey/termo/internal/ports"
)

// alphaRatioThreshold is the minimum share of letter-or-hyphen runes a
// noisy token must carry before a word is extracted from it. Below the
// threshold the token is not a word at all.
const alphaRatioThreshold = 0.7

// separators are the non-whitespace characters treated as positional
// placeholders when they bracket a word: hyphen, en/em dash, slash.
const separators = "-–—/"

// wordRunRE matches a maximal run of letters and hyphens inside a noisy
// token.
var wordRunRE = regexp.MustCompile(`[\p{L}-]+`)

// Tagger implements ports.Tagger by lexicon lookup.
type Tagger struct {
	lexicon *Lexicon
}

// NewTagger wraps a lexicon in the tagging contract.
func NewTagger(lexicon *Lexicon) *Tagger {
	return &Tagger{lexicon: lexicon}
}

// TagWord tags a single raw word. A nil result with no error means the
// input is not a recognizable word: either its letter ratio is below the
// acceptance threshold, it resolves to more than one hyphen-delimited
// alphabetic run, or the lexicon has no reading for it.
func (t *Tagger) TagWord(word string) (*ports.TaggedWord, error) {
	word = norm.NFC.String(word)
	extracted, ok := extractWord(word)
	if !ok {
		return nil, nil
	}
	reading, ok := t.lexicon.Lookup(extracted)
	if !ok {
		return nil, nil
	}
	return reading, nil
}

// TagPhrase splits text on whitespace and tags each token. Separators
// bracketing a token become Separator placeholders around its reading. A
// token bracketed on both sides whose word segment fails to tag is
// dropped entirely, separators included; with a bracket on one side only,
// the separators survive even when the word segment fails.
func (t *Tagger) TagPhrase(text string) ([]ports.Token, error) {
	var tokens []ports.Token
	for _, raw := range strings.Fields(norm.NFC.String(text)) {
		core := strings.Trim(raw, separators)
		lead := raw[:strings.Index(raw, core)]
		trail := raw[strings.Index(raw, core)+len(core):]
		if core == "" {
			// Token is separators only.
			for _, s := range raw {
				tokens = append(tokens, ports.Separator{Symbol: s})
			}
			continue
		}

		tagged, err := t.TagWord(core)
		if err != nil {
			return nil, err
		}
		if tagged == nil && lead != "" && trail != "" {
			continue
		}
		for _, s := range lead {
			tokens = append(tokens, ports.Separator{Symbol: s})
		}
		if tagged != nil {
			tokens = append(tokens, *tagged)
		}
		for _, s := range trail {
			tokens = append(tokens, ports.Separator{Symbol: s})
		}
	}
	return tokens, nil
}

// extractWord pulls the word out of a raw token. A fully alphabetic
// token, or one with an internal hyphen between alphabetic runs, passes
// through unchanged. Otherwise the token is accepted only when its
// letter-or-hyphen ratio meets the threshold and it contains exactly one
// maximal word run, which becomes the word.
func extractWord(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if isAlphaHyphen(token) {
		return token, true
	}

	runes := []rune(token)
	matching := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || r == '-' {
			matching++
		}
	}
	if float64(matching)/float64(len(runes)) < alphaRatioThreshold {
		return "", false
	}
	runs := wordRunRE.FindAllString(token, -1)
	if len(runs) != 1 {
		return "", false
	}
	return runs[0], true
}

// isAlphaHyphen reports whether the token is letters with at most
// internal hyphens ("парково-хозяйственный").
func isAlphaHyphen(token string) bool {
	if strings.HasPrefix(token, "-") || strings.HasSuffix(token, "-") {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}
	return true
}
