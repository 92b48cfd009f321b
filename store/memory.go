package store

import (
	"bytes"
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
)

// Memory is a DB that lives only as long as the process. It backs the
// --ephemeral flag and tests.
type Memory struct {
	values  map[string][]byte
	records []*models.Record
	mu      sync.Mutex
}

// NewMemory returns an empty in-memory DB.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
	}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}

	return bytes.Clone(v), nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = bytes.Clone(value)

	return nil
}

func (m *Memory) AddRecord(r *models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := *r
	m.records = append(m.records, &rec)

	slices.SortStableFunc(m.records, func(a, b *models.Record) int {
		return cmp.Compare(a.EndedAt.UnixNano(), b.EndedAt.UnixNano())
	})

	return nil
}

func (m *Memory) Records(since, until time.Time) ([]*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*models.Record

	for _, r := range m.records {
		if r.EndedAt.Before(since) || r.EndedAt.After(until) {
			continue
		}

		rec := *r
		out = append(out, &rec)
	}

	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
