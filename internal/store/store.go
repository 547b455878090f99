package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// Persisted state keys. Every key holds one JSON-encoded collection or
// scalar; mutations always read the full value, modify it in memory and
// write the full value back.
const (
	KeyMenu        = "dpizza_menu"
	KeyCoupons     = "dpizza_coupons"
	KeyHistory     = "dpizza_history"
	KeyProfile     = "dpizza_profile"
	KeyLastOrderID = "last_order_id"
)

const bucketName = "dpizza"

// Store is the sole persistence substrate of the application: a namespaced
// key-value layer over a single bbolt file. All components communicate
// indirectly through it; the customer and admin surfaces share nothing but
// this store.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the store file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store file %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying store file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Read decodes the value stored under key into out. It returns false when
// the key is absent or the stored bytes do not decode; the caller keeps
// whatever fallback value out already holds. A decode failure is logged and
// swallowed, never propagated: one corrupt entry must not take the whole
// application down with it.
func (s *Store) Read(key string, out interface{}) bool {
	var raw []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Discarding undecodable store entry, falling back to default")
		return false
	}
	return true
}

// Has reports whether any value is stored under key, decodable or not.
// First-run seeding keys off presence, not emptiness.
func (s *Store) Has(key string) bool {
	var found bool
	_ = s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket([]byte(bucketName)).Get([]byte(key)) != nil
		return nil
	})
	return found
}

// Write replaces the value under key wholesale with the JSON encoding of v.
// There are no partial or merge semantics.
func (s *Store) Write(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
