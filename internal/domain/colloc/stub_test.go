package colloc

import (
	"strings"

	"github.com/corey/termo/internal/ports"
)

// stubTagger is a map-backed ports.Tagger for tests: every reading is
// pinned, no disambiguation, unknown words fail to tag.
type stubTagger struct {
	readings map[string]ports.TaggedWord
}

func (s stubTagger) TagWord(word string) (*ports.TaggedWord, error) {
	if r, ok := s.readings[strings.ToLower(word)]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s stubTagger) TagPhrase(text string) ([]ports.Token, error) {
	var tokens []ports.Token
	for _, w := range strings.Fields(text) {
		tagged, _ := s.TagWord(w)
		if tagged != nil {
			tokens = append(tokens, *tagged)
		}
	}
	return tokens, nil
}

func tw(word string, pos ports.PartOfSpeech, cs ports.Case, lemma string) ports.TaggedWord {
	return ports.TaggedWord{Word: word, POS: pos, Case: cs, Normalized: lemma}
}

// newStubTagger covers the military-terminology fixtures the tests use.
func newStubTagger() stubTagger {
	entries := []ports.TaggedWord{
		tw("огонь", ports.POSNoun, ports.CaseNominative, "огонь"),
		tw("огня", ports.POSNoun, ports.CaseGenitive, "огонь"),
		tw("артиллерия", ports.POSNoun, ports.CaseNominative, "артиллерия"),
		tw("артиллерии", ports.POSNoun, ports.CaseGenitive, "артиллерия"),
		tw("вызов", ports.POSNoun, ports.CaseNominative, "вызов"),
		tw("большой", ports.POSAdjective, ports.CaseGenitive, "большой"),
		tw("мощности", ports.POSNoun, ports.CaseGenitive, "мощность"),
		tw("занятие", ports.POSNoun, ports.CaseNominative, "занятие"),
		tw("огневых", ports.POSAdjective, ports.CaseGenitive, "огневой"),
		tw("позиций", ports.POSNoun, ports.CaseGenitive, "позиция"),
		tw("основная", ports.POSAdjective, ports.CaseNominative, "основной"),
		tw("задача", ports.POSNoun, ports.CaseNominative, "задача"),
		tw("стрелкового", ports.POSAdjective, ports.CaseGenitive, "стрелковый"),
		tw("оружия", ports.POSNoun, ports.CaseGenitive, "оружие"),
		tw("парково-хозяйственный", ports.POSAdjective, ports.CaseNominative, "парково-хозяйственный"),
		tw("день", ports.POSNoun, ports.CaseNominative, "день"),
		tw("слушать", ports.POSVerb, ports.CaseNone, "слушать"),
		tw("громко", ports.POSAdverb, ports.CaseNone, "громко"),
		tw("и", ports.POSConjunction, ports.CaseNone, "и"),
		tw("минометных", ports.POSAdjective, ports.CaseGenitive, "минометный"),
		tw("дивизионов", ports.POSNoun, ports.CaseGenitive, "дивизион"),
		tw("распределение", ports.POSNoun, ports.CaseNominative, "распределение"),
		tw("построения", ports.POSNoun, ports.CaseGenitive, "построение"),
		tw("боевых", ports.POSAdjective, ports.CaseGenitive, "боевой"),
		tw("порядков", ports.POSNoun, ports.CaseGenitive, "порядок"),
		tw("боевой", ports.POSAdjective, ports.CaseNominative, "боевой"),
		tw("порядок", ports.POSNoun, ports.CaseNominative, "порядок"),
		tw("слово", ports.POSNoun, ports.CaseNominative, "слово"),
		tw("начало", ports.POSNoun, ports.CaseNominative, "начало"),
	}
	readings := make(map[string]ports.TaggedWord, len(entries))
	for _, e := range entries {
		readings[e.Word] = e
	}
	return stubTagger{readings: readings}
}

// tagPhrase is a test helper: tag text through the stub and keep the words.
func tagPhrase(t stubTagger, text string) []ports.TaggedWord {
	tokens, _ := t.TagPhrase(text)
	return ports.Words(tokens)
}
