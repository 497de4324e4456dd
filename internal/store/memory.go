// internal/store/memory.go
//
// Puzzle archive storage: which word was served for each slot.
// The word list can be reloaded while the server runs, so the archive is
// the record of what players actually saw rather than a recomputation.
//
// This file holds the Store interface and an in-memory implementation used
// when no database is configured (and in tests).
//
// Characteristics:
//   - Records keyed by slot index in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - First record for a slot wins; later ones are ignored.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned by Get for a slot with no record.
var ErrNotFound = errors.New("not found")

// Record is one served puzzle.
type Record struct {
	Slot        int       `json:"slot"`
	Date        string    `json:"date"`  // UTC YYYY-MM-DD of the slot
	Label       string    `json:"label"` // e.g. "Morning"
	Word        string    `json:"word"`
	ListVersion string    `json:"listVersion"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// Store defines the persistence interface for the puzzle archive.
// Implementations may be backed by memory (this package) or SQL (archive).
type Store interface {
	// Record stores r unless its slot is already recorded.
	Record(ctx context.Context, r Record) error

	// Get retrieves the record for slot, or ErrNotFound.
	Get(ctx context.Context, slot int) (Record, error)

	// List returns up to limit records with Slot < before, newest first.
	List(ctx context.Context, before, limit int) ([]Record, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex   // guards records
	records map[int]Record // keyed by Record.Slot
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[int]Record)}
}

func (m *memory) Record(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.Slot]; ok {
		return nil
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}
	m.records[r.Slot] = r
	return nil
}

func (m *memory) Get(ctx context.Context, slot int) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[slot]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

func (m *memory) List(ctx context.Context, before, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, limit)
	for slot, r := range m.records {
		if slot < before {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot > out[j].Slot })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
