package colloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/termo/internal/ports"
)

func TestMainWord_TwoNouns_GenitivePair(t *testing.T) {
	// Both nouns genitive — no direct case anywhere, first noun wins.
	phrase := []ports.TaggedWord{
		tw("огня", ports.POSNoun, ports.CaseGenitive, "огонь"),
		tw("артиллерии", ports.POSNoun, ports.CaseGenitive, "артиллерия"),
	}
	head, err := MainWord(phrase)
	require.NoError(t, err)
	assert.Equal(t, "огня", head)
}

func TestMainWord_TwoNouns_NominativeFirst(t *testing.T) {
	phrase := []ports.TaggedWord{
		tw("огонь", ports.POSNoun, ports.CaseNominative, "огонь"),
		tw("артиллерии", ports.POSNoun, ports.CaseGenitive, "артиллерия"),
	}
	head, err := MainWord(phrase)
	require.NoError(t, err)
	assert.Equal(t, "огонь", head)
}

func TestMainWord_AdjectiveNoun(t *testing.T) {
	// One noun among the words — the noun is the head regardless of case.
	phrase := []ports.TaggedWord{
		tw("парково-хозяйственный", ports.POSAdjective, ports.CaseNominative, "парково-хозяйственный"),
		tw("день", ports.POSNoun, ports.CaseNominative, "день"),
	}
	head, err := MainWord(phrase)
	require.NoError(t, err)
	assert.Equal(t, "день", head)
}

func TestMainWord_SingleNounOblique(t *testing.T) {
	phrase := []ports.TaggedWord{
		tw("стрелкового", ports.POSAdjective, ports.CaseGenitive, "стрелковый"),
		tw("оружия", ports.POSNoun, ports.CaseGenitive, "оружие"),
	}
	head, err := MainWord(phrase)
	require.NoError(t, err)
	assert.Equal(t, "оружия", head)
}

func TestMainWord_VerbAdverbRejected(t *testing.T) {
	phrase := []ports.TaggedWord{
		tw("слушать", ports.POSVerb, ports.CaseNone, "слушать"),
		tw("громко", ports.POSAdverb, ports.CaseNone, "громко"),
	}
	_, err := MainWord(phrase)
	assert.ErrorIs(t, err, ErrVerbAdverb)
}

func TestMainWord_SingleNoun(t *testing.T) {
	phrase := []ports.TaggedWord{
		tw("огонь", ports.POSNoun, ports.CaseNominative, "огонь"),
	}
	head, err := MainWord(phrase)
	require.NoError(t, err)
	assert.Equal(t, "огонь", head)
}

func TestMainWord_Undetermined(t *testing.T) {
	head, err := MainWord(nil)
	require.NoError(t, err)
	assert.Equal(t, "", head, "empty phrase is undetermined, not an error")

	// No noun at all.
	phrase := []ports.TaggedWord{
		tw("основная", ports.POSAdjective, ports.CaseNominative, "основной"),
		tw("огневых", ports.POSAdjective, ports.CaseGenitive, "огневой"),
	}
	head, err = MainWord(phrase)
	require.NoError(t, err)
	assert.Equal(t, "", head)
}
