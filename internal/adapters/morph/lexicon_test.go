package morph

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/termo/internal/ports"
)

func TestParseTSV(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"",
		"огонь\tNOUN\tnomn\tогонь",
		"громко\tADVB\tnone\tгромко",
	}, "\n")

	entries, err := ParseTSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ports.POSNoun, entries[0].POS)
	assert.Equal(t, ports.CaseNominative, entries[0].Case)
	assert.Equal(t, ports.POSAdverb, entries[1].POS)
	assert.Equal(t, ports.CaseNone, entries[1].Case, "indeclinables carry the none tag")
}

func TestParseTSV_BadLine(t *testing.T) {
	_, err := ParseTSV(strings.NewReader("огонь\tNOUN\tnomn"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestDefault_EmbeddedLexicon(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)
	assert.Greater(t, lex.Len(), 40, "the starter table is not empty")

	reading, ok := lex.Lookup("артиллерии")
	require.True(t, ok)
	assert.Equal(t, "артиллерия", reading.Normalized)
}

func TestLexicon_LookupIsCaseInsensitive(t *testing.T) {
	lex := NewLexicon()
	lex.Add(ports.TaggedWord{Word: "огонь", POS: ports.POSNoun, Case: ports.CaseNominative, Normalized: "огонь"})

	reading, ok := lex.Lookup("ОГОНЬ")
	require.True(t, ok)
	assert.Equal(t, "ОГОНЬ", reading.Word, "surface spelling of the query is preserved")
	assert.Equal(t, "огонь", reading.Normalized)
}

func TestLexicon_Replace(t *testing.T) {
	lex := NewLexicon()
	lex.Add(ports.TaggedWord{Word: "огонь", POS: ports.POSNoun, Case: ports.CaseNominative, Normalized: "огонь"})

	lex.Replace([]ports.TaggedWord{
		{Word: "порядок", POS: ports.POSNoun, Case: ports.CaseNominative, Normalized: "порядок"},
	})

	_, ok := lex.Lookup("огонь")
	assert.False(t, ok, "old readings are gone after Replace")
	_, ok = lex.Lookup("порядок")
	assert.True(t, ok)
	assert.Equal(t, 1, lex.Len())
}

func TestLoadFile_TSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.tsv")
	writeFile(t, path, "огонь\tNOUN\tnomn\tогонь\n")

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lex.Len())
}
