// Compiled binary lexicon format.
//
// Large dictionaries parse slowly as text, so `termo lexicon compile`
// bakes them into a flat binary blob that loads through mmap without
// touching a scanner. Layout (little-endian):
//
//	magic:      "TLX1" (4 bytes)
//	entryCount: uint32
//	per entry:
//	  wordLen:  uint16, word:  [wordLen]byte (UTF-8)
//	  pos:      uint8
//	  case:     uint8
//	  lemmaLen: uint16, lemma: [lemmaLen]byte (UTF-8)
package morph

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/edsrzf/mmap-go"

	"github.com/corey/termo/internal/ports"
)

const compiledMagic = "TLX1"

// Compile writes the lexicon entries to path in the compiled binary
// format. Entries are sorted by surface form for deterministic output.
func Compile(entries []ports.TaggedWord, path string) error {
	sorted := make([]ports.TaggedWord, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Word < sorted[j].Word })

	size := len(compiledMagic) + 4
	for _, e := range sorted {
		size += 2 + len(e.Word) + 1 + 1 + 2 + len(e.Normalized)
	}

	buf := make([]byte, size)
	offset := copy(buf, compiledMagic)
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(sorted)))
	offset += 4

	for _, e := range sorted {
		if len(e.Word) > 65535 || len(e.Normalized) > 65535 {
			return fmt.Errorf("lexicon entry too long: %q", e.Word)
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(e.Word)))
		offset += 2
		offset += copy(buf[offset:], e.Word)
		buf[offset] = byte(e.POS)
		buf[offset+1] = byte(e.Case)
		offset += 2
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(e.Normalized)))
		offset += 2
		offset += copy(buf[offset:], e.Normalized)
	}

	return os.WriteFile(path, buf, 0o644)
}

// LoadCompiled maps a compiled lexicon into memory and decodes it. The
// mapping is read-only and released once the table is built — the table
// owns its strings, the file can be replaced underneath a running
// process.
func LoadCompiled(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer data.Unmap()

	entries, err := decodeCompiled(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l := NewLexicon()
	l.Replace(entries)
	return l, nil
}

func decodeCompiled(data []byte) ([]ports.TaggedWord, error) {
	if len(data) < len(compiledMagic)+4 || string(data[:len(compiledMagic)]) != compiledMagic {
		return nil, fmt.Errorf("not a compiled lexicon")
	}
	offset := len(compiledMagic)
	count := binary.LittleEndian.Uint32(data[offset:])
	offset += 4

	// Each entry needs at least six bytes (two string length prefixes
	// plus the tag pair), so a header count the remaining bytes cannot
	// hold is corrupt. Checked before allocating count entries.
	if int(count) > (len(data)-offset)/6 {
		return nil, fmt.Errorf("entry count %d exceeds file size", count)
	}

	entries := make([]ports.TaggedWord, 0, count)
	for i := uint32(0); i < count; i++ {
		word, next, err := readString(data, offset)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		offset = next
		if offset+2 > len(data) {
			return nil, fmt.Errorf("entry %d: truncated tags", i)
		}
		pos := ports.PartOfSpeech(data[offset])
		grammCase := ports.Case(data[offset+1])
		offset += 2
		lemma, next, err := readString(data, offset)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		offset = next

		entries = append(entries, ports.TaggedWord{
			Word:       word,
			POS:        pos,
			Case:       grammCase,
			Normalized: lemma,
		})
	}
	return entries, nil
}

// readString decodes a uint16-prefixed string, copying the bytes out of
// the mapped region so the result outlives the mapping.
func readString(data []byte, offset int) (string, int, error) {
	if offset+2 > len(data) {
		return "", 0, fmt.Errorf("truncated length at %d", offset)
	}
	n := int(binary.LittleEndian.Uint16(data[offset:]))
	offset += 2
	if offset+n > len(data) {
		return "", 0, fmt.Errorf("truncated string at %d", offset)
	}
	return string(data[offset : offset+n]), offset + n, nil
}
