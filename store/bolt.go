package store

import (
	"bytes"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const storageBucket = "storage"

// Bolt is a BoltDB backend. BoltDB holds an exclusive file lock, so only one
// process can use a given database at a time.
type Bolt struct {
	*bolt.DB
}

// OpenBolt creates or opens a Bolt database and locks it.
func OpenBolt(path string) (*Bolt, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errStorageLocked
		}

		return nil, errOpenStorage.Fmt(DriverBolt).Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(storageBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenStorage.Fmt(DriverBolt).Wrap(err)
	}

	return &Bolt{db}, nil
}

func (b *Bolt) Get(key string) ([]byte, bool, error) {
	var value []byte

	err := b.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(storageBucket)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid for the life of the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, value != nil, err
}

func (b *Bolt) Put(key string, value []byte) error {
	return b.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(storageBucket)).Put([]byte(key), value)
	})
}

func (b *Bolt) Delete(key string) error {
	return b.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(storageBucket)).Delete([]byte(key))
	})
}

func (b *Bolt) Keys(prefix string) ([]string, error) {
	var keys []string

	p := []byte(prefix)

	err := b.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(storageBucket)).Cursor()

		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}

		return nil
	})

	return keys, err
}
