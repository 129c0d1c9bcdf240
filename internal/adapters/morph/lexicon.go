// Package morph implements the ports.Tagger and ports.Lexicon contracts
// against a precomputed lexicon: a table of surface forms with their
// OpenCorpora-style readings. There is no analysis from scratch here —
// a word the table does not know simply fails to tag.
//
// The table loads from three sources: the embedded starter lexicon, a
// tab-separated text file, or a compiled binary lexicon mapped with mmap.
package morph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/corey/termo/internal/ports"
)

// Lexicon is an in-memory surface-form table. Lookup is a single map
// access under a read lock; Replace swaps the whole table atomically,
// which is what the hot-reload path uses.
type Lexicon struct {
	mu       sync.RWMutex
	readings map[string]ports.TaggedWord
}

// NewLexicon builds an empty table.
func NewLexicon() *Lexicon {
	return &Lexicon{readings: make(map[string]ports.TaggedWord)}
}

// Lookup returns the reading for a surface form. The form is lowered and
// NFC-normalized before the lookup so composed and decomposed Cyrillic
// compare equal.
func (l *Lexicon) Lookup(word string) (*ports.TaggedWord, bool) {
	key := norm.NFC.String(strings.ToLower(word))
	l.mu.RLock()
	defer l.mu.RUnlock()
	if r, ok := l.readings[key]; ok {
		r.Word = word
		return &r, true
	}
	return nil, false
}

// Len returns the number of surface forms in the table.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.readings)
}

// Add inserts one reading, keyed by its lowered, NFC-normalized surface
// form.
func (l *Lexicon) Add(reading ports.TaggedWord) {
	key := norm.NFC.String(strings.ToLower(reading.Word))
	l.mu.Lock()
	defer l.mu.Unlock()
	l.readings[key] = reading
}

// Replace swaps the entire table for a new set of readings.
func (l *Lexicon) Replace(entries []ports.TaggedWord) {
	readings := make(map[string]ports.TaggedWord, len(entries))
	for _, e := range entries {
		readings[norm.NFC.String(strings.ToLower(e.Word))] = e
	}
	l.mu.Lock()
	l.readings = readings
	l.mu.Unlock()
}

// Entries returns a snapshot of all readings, in no particular order.
func (l *Lexicon) Entries() []ports.TaggedWord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]ports.TaggedWord, 0, len(l.readings))
	for _, r := range l.readings {
		out = append(out, r)
	}
	return out
}

// ParseTSV reads a tab-separated lexicon: one reading per line as
// "surface<TAB>pos<TAB>case<TAB>lemma", with OpenCorpora grammeme names
// for the tags. Blank lines and lines starting with # are skipped. An
// unknown grammeme is not an error — it maps to the none tag, matching
// how indeclinables are listed.
func ParseTSV(r io.Reader) ([]ports.TaggedWord, error) {
	var entries []ports.TaggedWord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("lexicon line %d: want 4 tab-separated fields, got %d", lineNo, len(fields))
		}
		entries = append(entries, ports.TaggedWord{
			Word:       norm.NFC.String(strings.ToLower(fields[0])),
			POS:        ports.ParsePOS(fields[1]),
			Case:       ports.ParseCase(fields[2]),
			Normalized: norm.NFC.String(strings.ToLower(fields[3])),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return entries, nil
}
