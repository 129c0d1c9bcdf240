package ports

import "strings"

// =============================================================================
// Canonical Tag Model
//
// These are the value types every layer speaks: the morphology adapter
// produces them, the domain comparators consume them, the store persists
// them. Tags follow the OpenCorpora grammeme inventory, which is what the
// Russian dictionary data uses.
// =============================================================================

// PartOfSpeech is the part-of-speech tag of a word. Closed set.
type PartOfSpeech int

const (
	POSNone PartOfSpeech = iota
	POSNoun
	POSAdjective
	POSVerb
	POSAdverb
	POSNumeral
	POSPronoun
	POSPreposition
	POSConjunction
	POSParticle
	POSInterjection
)

// posNames maps OpenCorpora grammemes to PartOfSpeech values. Full and
// short adjectives and both verb grammemes (VERB/INFN) collapse onto one
// tag each — the comparators never distinguish them.
var posNames = map[string]PartOfSpeech{
	"NOUN": POSNoun,
	"ADJF": POSAdjective,
	"ADJS": POSAdjective,
	"VERB": POSVerb,
	"INFN": POSVerb,
	"ADVB": POSAdverb,
	"NUMR": POSNumeral,
	"NPRO": POSPronoun,
	"PREP": POSPreposition,
	"CONJ": POSConjunction,
	"PRCL": POSParticle,
	"INTJ": POSInterjection,
}

var posStrings = map[PartOfSpeech]string{
	POSNone:         "NONE",
	POSNoun:         "NOUN",
	POSAdjective:    "ADJF",
	POSVerb:         "VERB",
	POSAdverb:       "ADVB",
	POSNumeral:      "NUMR",
	POSPronoun:      "NPRO",
	POSPreposition:  "PREP",
	POSConjunction:  "CONJ",
	POSParticle:     "PRCL",
	POSInterjection: "INTJ",
}

// ParsePOS resolves an OpenCorpora grammeme name to a PartOfSpeech.
// Unknown or empty grammemes map to POSNone.
func ParsePOS(grammeme string) PartOfSpeech {
	return posNames[strings.ToUpper(grammeme)]
}

func (p PartOfSpeech) String() string { return posStrings[p] }

// Case is the grammatical case of a declinable word.
// CaseNone marks indeclinable words and unassigned tags.
type Case int

const (
	CaseNone Case = iota
	CaseNominative
	CaseGenitive
	CaseDative
	CaseAccusative
	CaseInstrumental
	CasePrepositional
	CaseVocative
	CaseLocative
	CasePartitive
)

// caseNames maps OpenCorpora grammemes to Case values. The second genitive
// ("gen2", чашка чаю) folds into partitive, the second locative ("loc2",
// в лесу) into locative, matching how the dictionary data tags them.
var caseNames = map[string]Case{
	"nomn": CaseNominative,
	"gent": CaseGenitive,
	"datv": CaseDative,
	"accs": CaseAccusative,
	"ablt": CaseInstrumental,
	"loct": CasePrepositional,
	"voct": CaseVocative,
	"loc2": CaseLocative,
	"gen2": CasePartitive,
}

var caseStrings = map[Case]string{
	CaseNone:          "none",
	CaseNominative:    "nomn",
	CaseGenitive:      "gent",
	CaseDative:        "datv",
	CaseAccusative:    "accs",
	CaseInstrumental:  "ablt",
	CasePrepositional: "loct",
	CaseVocative:      "voct",
	CaseLocative:      "loc2",
	CasePartitive:     "gen2",
}

// ParseCase resolves an OpenCorpora grammeme name to a Case.
// Unknown or empty grammemes map to CaseNone.
func ParseCase(grammeme string) Case {
	return caseNames[strings.ToLower(grammeme)]
}

func (c Case) String() string { return caseStrings[c] }

// TaggedWord is one word with its morphological reading: surface form,
// part of speech, grammatical case, and lemma. Produced only by the
// tagger; the core never builds inconsistent pos/case pairs itself.
type TaggedWord struct {
	Word       string       `json:"word"`
	POS        PartOfSpeech `json:"pos"`
	Case       Case         `json:"case"`
	Normalized string       `json:"normalized"`
}

// Separator is a positional placeholder for a non-whitespace separator
// (hyphen, slash) inside a tagged sequence. It preserves the layout of
// compound words without itself taking part in identity comparison.
type Separator struct {
	Symbol rune `json:"symbol"`
}

// Token is one element of a tagged phrase: a TaggedWord or a Separator.
type Token interface {
	token()
}

func (TaggedWord) token() {}
func (Separator) token()  {}

// Words filters a token sequence down to its tagged words, dropping
// separators. Comparators operate on the word sequence only.
func Words(tokens []Token) []TaggedWord {
	out := make([]TaggedWord, 0, len(tokens))
	for _, t := range tokens {
		if w, ok := t.(TaggedWord); ok {
			out = append(out, w)
		}
	}
	return out
}

// Collocation is one multi-word term candidate with its frequency and
// identity metadata.
//
// Invariants:
//   - WordCount equals the number of whitespace-separated tokens in Text.
//   - ID is unique within any working list handed to FindByID.
//   - Every entry of LinkedIDs should resolve to another Collocation in
//     the same working list. This is checked diagnostically, never
//     enforced at construction.
type Collocation struct {
	Text         string `json:"text"`
	WordCount    int    `json:"word_count"`
	Frequency    int    `json:"frequency"`
	PseudoNormal string `json:"pseudo_normal_form"`
	LinkedIDs    []int  `json:"linked_ids,omitempty"`
	ID           int    `json:"id"`
}

// NewCollocation builds a candidate from its surface text, deriving
// WordCount from the text so the count invariant holds.
func NewCollocation(text string, freq, id int) Collocation {
	return Collocation{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Frequency: freq,
		ID:        id,
	}
}
