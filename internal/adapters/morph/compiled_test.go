package morph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/termo/internal/ports"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func sampleEntries() []ports.TaggedWord {
	return []ports.TaggedWord{
		{Word: "огонь", POS: ports.POSNoun, Case: ports.CaseNominative, Normalized: "огонь"},
		{Word: "огня", POS: ports.POSNoun, Case: ports.CaseGenitive, Normalized: "огонь"},
		{Word: "громко", POS: ports.POSAdverb, Case: ports.CaseNone, Normalized: "громко"},
	}
}

func TestCompileAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.tlx")

	require.NoError(t, Compile(sampleEntries(), path))

	lex, err := LoadCompiled(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())

	reading, ok := lex.Lookup("огня")
	require.True(t, ok)
	assert.Equal(t, ports.CaseGenitive, reading.Case)
	assert.Equal(t, "огонь", reading.Normalized)
}

func TestLoadCompiled_BadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.tlx")
	writeFile(t, path, "not a lexicon at all")

	_, err := LoadCompiled(path)
	assert.Error(t, err)
}

func TestLoadCompiled_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.tlx")
	require.NoError(t, Compile(sampleEntries(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	writeFile(t, path, string(data[:len(data)-3]))

	_, err = LoadCompiled(path)
	assert.Error(t, err)
}

func TestLoadCompiled_CorruptEntryCount(t *testing.T) {
	// A header claiming far more entries than the file holds must fail
	// the size check, not allocate room for the claimed count.
	path := filepath.Join(t.TempDir(), "lex.tlx")
	header := append([]byte("TLX1"), 0xFF, 0xFF, 0xFF, 0x7F) // count = 0x7FFFFFFF
	writeFile(t, path, string(header)+"tiny")

	_, err := LoadCompiled(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds file size")
}

func TestLoadFile_SniffsCompiledFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.bin")
	require.NoError(t, Compile(sampleEntries(), path))

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())
}
