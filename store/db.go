package store

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
)

// KV is a durable string-keyed store. Get returns a nil value and a nil
// error when the key is absent.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// History records the sessions that have ended.
type History interface {
	// AddRecord stores a record keyed by its end time
	AddRecord(r *models.Record) error
	// Records returns the records that ended within [since, until] in
	// chronological order
	Records(since, until time.Time) ([]*models.Record, error)
}

// DB is the database storage interface.
type DB interface {
	KV
	History
	// Close ends the database connection
	Close() error
}
