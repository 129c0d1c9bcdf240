package colloc

import (
	"errors"
	"fmt"
)

// Malformed-input errors. All of them mean the caller handed the comparator
// something it refuses to reason about; none are recoverable internally.
var (
	// ErrNotAWord: a multi-word string was passed where a single word is required.
	ErrNotAWord = errors.New("expected a single word, got a phrase")

	// ErrNotAPhrase: fewer than two words where a phrase is required.
	ErrNotAPhrase = errors.New("expected a phrase of at least two words")

	// ErrBadWord: a token contains characters other than letters
	// (an internal hyphen is allowed).
	ErrBadWord = errors.New("words must consist of letters")

	// ErrVerbAdverb: the phrase mixes verb and adverb tags. Only
	// noun-phrase collocations are supported.
	ErrVerbAdverb = errors.New("phrases with verbs and adverbs are not supported")

	// ErrUntaggable: the tagger did not recognize a word that passed
	// surface validation.
	ErrUntaggable = errors.New("word not recognized by the tagger")
)

// Diagnostic records one suppressed per-item failure inside a batch
// operation. Batch loops never abort on a bad element; they convert the
// inner error to "not a match" and report it here instead of dropping it.
type Diagnostic struct {
	Op   string // operation that suppressed the error
	Item string // offending phrase or substring
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %q: %v", d.Op, d.Item, d.Err)
}
