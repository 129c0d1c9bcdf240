package normform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/termo/internal/ports"
)

func cluster(texts ...string) []ports.Collocation {
	out := make([]ports.Collocation, len(texts))
	for i, text := range texts {
		out[i] = ports.NewCollocation(text, 1, i+1)
	}
	return out
}

func TestResolve_PicksNominativeVariant(t *testing.T) {
	candidates := cluster("огня артиллерии", "огонь артиллерии")

	index, err := Resolve("огонь артиллерия", "огонь", candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, index, "the variant containing the head word and closest to the pseudo-normal form wins")
}

func TestResolve_HeadContainmentFilter(t *testing.T) {
	// Closest candidate by distance does not contain the head word;
	// the next one within the threshold does.
	candidates := cluster("огня артиллерии", "огонь артиллерии")

	index, err := Resolve("огня артиллерия", "огонь", candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestResolve_Unresolved(t *testing.T) {
	candidates := cluster("основная задача", "стрелкового оружия")

	index, err := Resolve("боевой порядок", "порядок", candidates)
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Equal(t, -1, index)
}

func TestResolve_StableTieBreak(t *testing.T) {
	// Two candidates at identical distance: the earlier one wins.
	candidates := cluster("огонь артиллерии", "огонь артиллерии")

	index, err := Resolve("огонь артиллерии", "огонь", candidates)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}

func TestResolve_YoNormalization(t *testing.T) {
	// The same cluster resolved against the ё and е spellings of the
	// pseudo-normal form must agree.
	clusterYo := cluster("огнём артиллерии", "огонь артиллерии")
	clusterE := cluster("огнём артиллерии", "огонь артиллерии")

	indexYo, errYo := Resolve("огнём артиллерии", "огнем", clusterYo)
	indexE, errE := Resolve("огнем артиллерии", "огнём", clusterE)

	require.NoError(t, errYo)
	require.NoError(t, errE)
	assert.Equal(t, indexE, indexYo, "results identical whether the input used ё or е")
}

func TestResolve_YoRewritesCandidates(t *testing.T) {
	candidates := cluster("огнём артиллерии", "огонь артиллерии")

	index, err := Resolve("огнём артиллерии", "огнем", candidates)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	// The documented side effect: surface text is rewritten before
	// comparison when ё is in play.
	assert.Equal(t, "огнем артиллерии", candidates[0].Text)
}

func TestResolve_YoInHeadWordTriggersNormalization(t *testing.T) {
	candidates := cluster("огнём артиллерии", "огнем артиллерии")

	index, err := Resolve("огнем артиллерии", "огнём", candidates)
	require.NoError(t, err)
	assert.Equal(t, 0, index, "after normalization both candidates qualify; the first wins the tie")
	assert.Equal(t, "огнем артиллерии", candidates[0].Text)
}

func TestNormalizeYo(t *testing.T) {
	assert.Equal(t, "огнем", NormalizeYo("огнём"))
	assert.Equal(t, "Елка", NormalizeYo("Ёлка"))
	assert.Equal(t, "огонь", NormalizeYo("огонь"))
}

func TestReplaceMainWord(t *testing.T) {
	c := ports.NewCollocation("огня артиллерии", 3, 7)
	c.PseudoNormal = "огонь артиллерия"

	got := ReplaceMainWord(c, "огонь")
	assert.Equal(t, "огонь артиллерии", got.Text)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, 3, got.Frequency, "frequency survives the rewrite")
}

func TestReplaceMainWord_AlreadyPresent(t *testing.T) {
	c := ports.NewCollocation("огонь артиллерии", 1, 1)
	c.PseudoNormal = "огонь артиллерия"

	got := ReplaceMainWord(c, "огонь")
	assert.Equal(t, c, got, "unchanged when the text already carries the head word")
}

func TestReplaceMainWord_HeadNotInPseudoNormal(t *testing.T) {
	c := ports.NewCollocation("огня артиллерии", 1, 1)
	c.PseudoNormal = "огонь артиллерия"

	got := ReplaceMainWord(c, "порядок")
	assert.Equal(t, c, got)
}

func TestBiwordNormalForm(t *testing.T) {
	phrase := []ports.TaggedWord{
		{Word: "огня", POS: ports.POSNoun, Case: ports.CaseGenitive, Normalized: "огонь"},
		{Word: "артиллерии", POS: ports.POSNoun, Case: ports.CaseGenitive, Normalized: "артиллерия"},
	}
	assert.Equal(t, "огонь артиллерии", BiwordNormalForm(phrase),
		"head takes its lemma, genitive dependent keeps its surface form")
}

func TestBiwordNormalForm_AdjectiveNoun(t *testing.T) {
	phrase := []ports.TaggedWord{
		{Word: "боевых", POS: ports.POSAdjective, Case: ports.CaseGenitive, Normalized: "боевой"},
		{Word: "порядков", POS: ports.POSNoun, Case: ports.CaseGenitive, Normalized: "порядок"},
	}
	assert.Equal(t, "боевой порядок", BiwordNormalForm(phrase))
}

func TestBiwordNormalForm_WrongLength(t *testing.T) {
	assert.Equal(t, "", BiwordNormalForm(nil))
	assert.Equal(t, "", BiwordNormalForm([]ports.TaggedWord{
		{Word: "огонь", POS: ports.POSNoun, Case: ports.CaseNominative, Normalized: "огонь"},
	}))
}
