// Package ports defines the interfaces (contracts) that adapters must implement,
// plus the canonical tag model they exchange. These are the boundaries of the
// hexagonal architecture. Domain logic depends only on these interfaces, never
// on concrete implementations.
package ports

// Storage persists candidate lists and lexicon snapshots to durable storage.
// The backing store (bbolt) is corpus-scoped: each corpusID gets its own
// namespace. Concurrent reads are safe; writes are serialized by the adapter.
//
// Crash safety: SaveCandidates and SaveLexicon must be transactional.
// A crash mid-write must not corrupt previously committed data.
type Storage interface {
	// SaveCandidates persists the full candidate list for a corpus.
	// Overwrites any prior list for this corpusID.
	SaveCandidates(corpusID string, candidates []Collocation) error

	// LoadCandidates retrieves the candidate list for a corpus.
	// Returns nil, nil if no list exists (fresh corpus).
	LoadCandidates(corpusID string) ([]Collocation, error)

	// SaveLexicon persists a surface-form → reading table for a corpus.
	// Overwrites any prior table for this corpusID.
	SaveLexicon(corpusID string, entries []TaggedWord) error

	// LoadLexicon retrieves the lexicon table for a corpus.
	// Returns nil, nil if no table exists.
	LoadLexicon(corpusID string) ([]TaggedWord, error)

	// DeleteCorpus removes all data (candidates + lexicon) for a corpus.
	// Idempotent: deleting a nonexistent corpus is not an error.
	DeleteCorpus(corpusID string) error
}
