// Package store persists pomo settings and session history
package store

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const (
	settingsBucket = "settings"
	historyBucket  = "history"
)

const fileMode fs.FileMode = 0o600

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Get returns a copy of the value stored under key in the settings bucket.
func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(key))
		if v != nil {
			value = bytes.Clone(v)
		}

		return nil
	})

	return value, err
}

// Put stores value under key in the settings bucket.
func (c *Client) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(key), value)
	})
}

func (c *Client) AddRecord(r *models.Record) error {
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).
			Put(timeutil.ToKey(r.EndedAt), value)
	})
}

func (c *Client) Records(since, until time.Time) ([]*models.Record, error) {
	var records []*models.Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()

		minKey := timeutil.ToKey(since)
		maxKey := timeutil.ToKey(until)

		for k, v := cur.Seek(minKey); k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var r models.Record

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			records = append(records, &r)
		}

		return nil
	})

	return records, err
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errPomoRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{settingsBucket, historyBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// InUse reports whether another process holds the lock on the database at
// dbPath, which means a timer is currently open.
func InUse(dbPath string) (bool, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	db, err := bolt.Open(dbPath, fileMode, &bolt.Options{
		Timeout:  100 * time.Millisecond,
		ReadOnly: true,
	})
	if err == nil {
		return false, db.Close()
	}

	// The file lock is held elsewhere until the timeout expires.
	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}

	return false, err
}
