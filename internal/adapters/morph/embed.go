package morph

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
)

//go:embed data/lexicon.tsv
var starterLexicon []byte

// Default builds a lexicon from the embedded starter table, so the
// binary works with no external dictionary at all.
func Default() (*Lexicon, error) {
	entries, err := ParseTSV(bytes.NewReader(starterLexicon))
	if err != nil {
		return nil, fmt.Errorf("embedded lexicon: %w", err)
	}
	l := NewLexicon()
	l.Replace(entries)
	return l, nil
}

// LoadFile loads a lexicon from disk, picking the format by sniffing:
// the compiled binary format by its magic bytes, tab-separated text
// otherwise.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	magic := make([]byte, len(compiledMagic))
	n, _ := f.Read(magic)
	if n == len(compiledMagic) && bytes.Equal(magic, []byte(compiledMagic)) {
		return LoadCompiled(path)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	entries, err := ParseTSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l := NewLexicon()
	l.Replace(entries)
	return l, nil
}
