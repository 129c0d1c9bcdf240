// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Each corpus gets its own top-level bucket. Within that bucket,
// "candidates" and "lexicon" keys hold JSON-serialized data. Writes are
// transactional — a crash mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/termo/internal/ports"
)

// Bucket keys
var (
	keyCandidates = []byte("candidates")
	keyLexicon    = []byte("lexicon")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCandidates persists the full candidate list for a corpus.
func (s *Store) SaveCandidates(corpusID string, candidates []ports.Collocation) error {
	if candidates == nil {
		return fmt.Errorf("nil candidate list")
	}
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		corpus, err := tx.CreateBucketIfNotExists([]byte(corpusID))
		if err != nil {
			return err
		}
		return corpus.Put(keyCandidates, data)
	})
}

// LoadCandidates retrieves the candidate list for a corpus.
// Returns nil, nil if no list exists (fresh corpus).
func (s *Store) LoadCandidates(corpusID string) ([]ports.Collocation, error) {
	data, err := s.get(corpusID, keyCandidates)
	if err != nil || data == nil {
		return nil, err
	}

	var candidates []ports.Collocation
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("unmarshal candidates: %w", err)
	}
	return candidates, nil
}

// SaveLexicon persists a surface-form table for a corpus.
func (s *Store) SaveLexicon(corpusID string, entries []ports.TaggedWord) error {
	if entries == nil {
		return fmt.Errorf("nil lexicon")
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal lexicon: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		corpus, err := tx.CreateBucketIfNotExists([]byte(corpusID))
		if err != nil {
			return err
		}
		return corpus.Put(keyLexicon, data)
	})
}

// LoadLexicon retrieves the lexicon table for a corpus.
// Returns nil, nil if no table exists.
func (s *Store) LoadLexicon(corpusID string) ([]ports.TaggedWord, error) {
	data, err := s.get(corpusID, keyLexicon)
	if err != nil || data == nil {
		return nil, err
	}

	var entries []ports.TaggedWord
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal lexicon: %w", err)
	}
	return entries, nil
}

// DeleteCorpus removes all data for a corpus. Idempotent.
func (s *Store) DeleteCorpus(corpusID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(corpusID)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(corpusID))
	})
}

// get copies one value out of a corpus bucket. bbolt slices are only
// valid within the transaction, so the bytes are copied before return.
func (s *Store) get(corpusID string, key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		corpus := tx.Bucket([]byte(corpusID))
		if corpus == nil {
			return nil
		}
		if v := corpus.Get(key); v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
