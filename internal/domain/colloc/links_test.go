package colloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/termo/internal/ports"
)

func linkedCandidates() []ports.Collocation {
	a := ports.NewCollocation("огонь артиллерии", 4, 1)
	b := ports.NewCollocation("огня артиллерии", 2, 2)
	c := ports.NewCollocation("вызов огня артиллерии", 1, 3)
	a.LinkedIDs = []int{2}
	c.LinkedIDs = []int{1, 2}
	return []ports.Collocation{a, b, c}
}

func TestFindByID_Hit(t *testing.T) {
	candidates := linkedCandidates()

	got, ok := FindByID(candidates, 2)
	require.True(t, ok)
	assert.Equal(t, "огня артиллерии", got.Text)
}

func TestFindByID_Miss(t *testing.T) {
	candidates := linkedCandidates()

	got, ok := FindByID(candidates, 99)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFindByID_MissDoesNotChangeList(t *testing.T) {
	candidates := linkedCandidates()
	snapshot := append([]ports.Collocation{}, candidates...)

	_, _ = FindByID(candidates, 99)
	assert.Equal(t, snapshot, candidates, "the diagnostic pass is read-only")
}

func TestCheckLinks_Consistent(t *testing.T) {
	report := CheckLinks(linkedCandidates())
	assert.True(t, report.Consistent)
	assert.True(t, report.AnyLinks)
	assert.Empty(t, report.Broken)
}

func TestCheckLinks_Broken(t *testing.T) {
	candidates := linkedCandidates()
	candidates[0].LinkedIDs = append(candidates[0].LinkedIDs, 42)

	report := CheckLinks(candidates)
	assert.False(t, report.Consistent)
	assert.True(t, report.AnyLinks)
	assert.Equal(t, [][2]int{{1, 42}}, report.Broken)
}

func TestCheckLinks_NoLinks(t *testing.T) {
	candidates := []ports.Collocation{
		ports.NewCollocation("огонь артиллерии", 1, 1),
	}
	report := CheckLinks(candidates)
	assert.True(t, report.Consistent)
	assert.False(t, report.AnyLinks)
}
