package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/termo/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "termo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCandidates_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []ports.Collocation{
		{Text: "огонь артиллерии", WordCount: 2, Frequency: 4, PseudoNormal: "огонь артиллерия", LinkedIDs: []int{2}, ID: 1},
		{Text: "огня артиллерии", WordCount: 2, Frequency: 2, ID: 2},
	}
	require.NoError(t, store.SaveCandidates("corpus-a", in))

	out, err := store.LoadCandidates("corpus-a")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCandidates_FreshCorpus(t *testing.T) {
	store := newTestStore(t)

	out, err := store.LoadCandidates("nothing-here")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCandidates_Overwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveCandidates("c", []ports.Collocation{{Text: "огонь артиллерии", WordCount: 2, ID: 1}}))
	require.NoError(t, store.SaveCandidates("c", []ports.Collocation{{Text: "боевой порядок", WordCount: 2, ID: 2}}))

	out, err := store.LoadCandidates("c")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "боевой порядок", out[0].Text)
}

func TestLexicon_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []ports.TaggedWord{
		{Word: "огонь", POS: ports.POSNoun, Case: ports.CaseNominative, Normalized: "огонь"},
		{Word: "громко", POS: ports.POSAdverb, Case: ports.CaseNone, Normalized: "громко"},
	}
	require.NoError(t, store.SaveLexicon("corpus-a", in))

	out, err := store.LoadLexicon("corpus-a")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDeleteCorpus(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveCandidates("c", []ports.Collocation{{Text: "огонь артиллерии", WordCount: 2, ID: 1}}))
	require.NoError(t, store.DeleteCorpus("c"))

	out, err := store.LoadCandidates("c")
	require.NoError(t, err)
	assert.Nil(t, out)

	// Idempotent on a corpus that never existed.
	assert.NoError(t, store.DeleteCorpus("ghost"))
}

func TestCorpusIsolation(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveCandidates("a", []ports.Collocation{{Text: "огонь артиллерии", WordCount: 2, ID: 1}}))
	require.NoError(t, store.SaveCandidates("b", []ports.Collocation{{Text: "боевой порядок", WordCount: 2, ID: 9}}))

	a, err := store.LoadCandidates("a")
	require.NoError(t, err)
	b, err := store.LoadCandidates("b")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
