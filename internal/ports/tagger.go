package ports

// Tagger assigns morphological readings to raw text. Implementations are
// stateless from the caller's view and safe for concurrent use; the core
// receives one as an explicit dependency, never as ambient global state.
type Tagger interface {
	// TagWord tags a single raw word. Returns nil (and no error) when the
	// input is not a recognizable word: its alphabetic-character ratio is
	// below the acceptance threshold, or it resolves to more than one
	// hyphen-delimited alphabetic run.
	TagWord(word string) (*TaggedWord, error)

	// TagPhrase splits text on whitespace, tags each token, and re-inserts
	// Separator placeholders for non-whitespace punctuation found adjacent
	// to a word. A token bracketed by separators on both sides whose word
	// segment fails to tag is dropped entirely; otherwise the surrounding
	// separators survive even when the word segment fails.
	TagPhrase(text string) ([]Token, error)
}

// Lexicon is the precomputed surface-form table used for lightweight
// tagging: a plain lookup, no disambiguation, no prediction. The
// containment extractor uses it instead of the full tagger so that
// substring tagging stays a map access.
type Lexicon interface {
	// Lookup returns the reading for a surface form, or ok=false when the
	// form is not in the table.
	Lookup(word string) (*TaggedWord, bool)
}
