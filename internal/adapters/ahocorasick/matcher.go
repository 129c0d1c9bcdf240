// Package ahocorasick finds mentions of candidate surface forms in raw
// text using an Aho-Corasick automaton. One pass over the text matches
// every candidate at once, O(n + m + z), instead of one scan per
// candidate.
package ahocorasick

import (
	"unicode"
	"unicode/utf8"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Mention is one occurrence of a candidate surface form in scanned text.
type Mention struct {
	Candidate int // index into the surfaces the scanner was built from
	Start     int // byte offset, inclusive
	End       int // byte offset, exclusive
}

// Scanner matches a fixed set of candidate surface forms against text.
// Matching is case-sensitive; the caller normalizes case on both sides.
type Scanner struct {
	automaton aho.AhoCorasick
	surfaces  []string
}

// NewScanner builds the automaton from the given surface forms.
func NewScanner(surfaces []string) *Scanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	s := make([]string, len(surfaces))
	copy(s, surfaces)
	return &Scanner{
		automaton: builder.Build(s),
		surfaces:  s,
	}
}

// Mentions returns every candidate occurrence in text, including nested
// ones (a two-word term inside the three-word term that contains it).
// Matches that land mid-word are discarded: both ends of a mention must
// sit on a word boundary, so "день" never matches inside "деньги".
func (s *Scanner) Mentions(text string) []Mention {
	if len(s.surfaces) == 0 {
		return nil
	}
	content := []byte(text)
	iter := s.automaton.IterOverlappingByte(content)
	var mentions []Mention
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		if !boundary(content, m.Start(), m.End()) {
			continue
		}
		mentions = append(mentions, Mention{
			Candidate: m.Pattern(),
			Start:     m.Start(),
			End:       m.End(),
		})
	}
	return mentions
}

// Counts aggregates Mentions into per-candidate occurrence counts,
// indexed like the surfaces the scanner was built from.
func (s *Scanner) Counts(text string) []int {
	counts := make([]int, len(s.surfaces))
	for _, m := range s.Mentions(text) {
		counts[m.Candidate]++
	}
	return counts
}

// Surface returns the surface form at the given index.
func (s *Scanner) Surface(idx int) string {
	if idx < 0 || idx >= len(s.surfaces) {
		return ""
	}
	return s.surfaces[idx]
}

// Len returns the number of surface forms in the automaton.
func (s *Scanner) Len() int {
	return len(s.surfaces)
}

// boundary reports whether the byte range [start, end) is delimited by
// non-letter runes (or the text edges) on both sides.
func boundary(content []byte, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRune(content[:start])
		if unicode.IsLetter(r) {
			return false
		}
	}
	if end < len(content) {
		r, _ := utf8.DecodeRune(content[end:])
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
