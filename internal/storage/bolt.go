package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/xolan/diary/internal/osutil"
	"go.etcd.io/bbolt"
)

const (
	// BoltFile is the database file name inside the data directory
	BoltFile = "diary.bolt"

	boltBucketEntries = "entries" // key -> serialized collection
)

// BoltAdapter keeps blobs in a single bbolt bucket.
type BoltAdapter struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) <dir>/diary.bolt.
// Fails after one second if another process holds the database lock.
func OpenBolt(dir string) (*BoltAdapter, error) {
	if dir == "" {
		return nil, errors.New("storage directory cannot be empty")
	}
	if err := osutil.EnsureDir(dir); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(filepath.Join(dir, BoltFile), 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketEntries))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltAdapter{db: db}, nil
}

// Load returns a copy of the value stored under key.
func (b *BoltAdapter) Load(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketEntries)).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction
			data = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

// Save stores data under key in a single write transaction.
func (b *BoltAdapter) Save(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketEntries)).Put([]byte(key), data)
	})
}

// Close releases the database file and its lock.
func (b *BoltAdapter) Close() error {
	return b.db.Close()
}
