package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/slotword/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "archive.db"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	at := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	rec := store.Record{Slot: 0, Date: "2026-01-01", Label: "Morning", Word: "apple", ListVersion: "abc", RecordedAt: at}
	if err := s.Record(ctx, rec); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	// Second record for the same slot is ignored.
	if err := s.Record(ctx, store.Record{Slot: 0, Date: "2026-01-01", Label: "Morning", Word: "grape"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := s.Get(ctx, 0)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Word != "apple" || got.Label != "Morning" || got.ListVersion != "abc" {
		t.Errorf("Get() = %+v", got)
	}
	if !got.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %s, want %s", got.RecordedAt, at)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get() error = %v, want store.ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, store.Record{Slot: i, Date: "2026-01-02", Label: "x", Word: "w"}); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.List(ctx, 4, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 || got[0].Slot != 3 || got[1].Slot != 2 {
		t.Errorf("List() = %+v, want slots 3,2", got)
	}
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s1.Record(context.Background(), store.Record{Slot: 1, Date: "d", Label: "l", Word: "w"})
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()
	if _, err := s2.Get(context.Background(), 1); err != nil {
		t.Errorf("record lost across reopen: %v", err)
	}
}
