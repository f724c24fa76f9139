package runstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketRuns = []byte("runs") // sequence number -> RunRecord JSON

// boltStore implements Store using BoltDB.
type boltStore struct {
	db *bolt.DB
}

// Open opens (creating if needed) the run store at path.
func Open(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(bucketRuns)
		return createErr
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

// Append implements Store.Append.
func (s *boltStore) Append(record RunRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal run record: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if putErr := b.Put(key, data); putErr != nil {
			return fmt.Errorf("failed to store run record: %w", putErr)
		}
		return nil
	})
}

// List implements Store.List.
func (s *boltStore) List(n int) ([]RunRecord, error) {
	var records []RunRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketRuns).Cursor()

		// Newest first: sequence keys are big-endian, so walk backwards.
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if n > 0 && len(records) >= n {
				break
			}

			var record RunRecord
			if unmarshalErr := json.Unmarshal(v, &record); unmarshalErr != nil {
				return fmt.Errorf("failed to unmarshal run record: %w", unmarshalErr)
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Close implements Store.Close.
func (s *boltStore) Close() error {
	return s.db.Close()
}
