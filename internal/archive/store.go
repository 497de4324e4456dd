// internal/archive/store.go
//
// SQLite implementation of store.Store.

package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/slotword/internal/store"
)

// Store persists served puzzles in SQLite.
type Store struct{ db *sql.DB }

var _ store.Store = (*Store)(nil)

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts r; an existing row for the slot is kept.
func (s *Store) Record(ctx context.Context, r store.Record) error {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO puzzles
            (slot, date, label, word, list_version, recorded_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.Slot, r.Date, r.Label, r.Word, r.ListVersion, r.RecordedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Get returns the record for slot or store.ErrNotFound.
func (s *Store) Get(ctx context.Context, slot int) (store.Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT slot, date, label, word, list_version, recorded_at
        FROM puzzles WHERE slot=?`, slot)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Record{}, store.ErrNotFound
	}
	return r, err
}

// List returns up to limit records before the given slot, newest first.
// Default limit is 20 if not specified.
func (s *Store) List(ctx context.Context, before, limit int) ([]store.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT slot, date, label, word, list_version, recorded_at
        FROM puzzles
        WHERE slot < ?
        ORDER BY slot DESC
        LIMIT ?`, before, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.Record, 0, limit)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (store.Record, error) {
	var (
		r        store.Record
		recorded string
	)
	if err := sc.Scan(&r.Slot, &r.Date, &r.Label, &r.Word, &r.ListVersion, &recorded); err != nil {
		return store.Record{}, err
	}
	r.RecordedAt, _ = time.Parse(time.RFC3339, recorded)
	return r, nil
}
