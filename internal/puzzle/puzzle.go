// internal/puzzle/puzzle.go
//
// Puzzle service: composes the schedule, the word list and the selector.
// Responsibilities:
//   - Resolve the puzzle for an instant (slot index, label, solution).
//   - Record served puzzles to the archive.
//   - Swap in a reloaded word list atomically.
//   - Start game sessions for the current slot.

package puzzle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/slotword/internal/game"
	"github.com/robalobadob/slotword/internal/schedule"
	"github.com/robalobadob/slotword/internal/selector"
	"github.com/robalobadob/slotword/internal/store"
	"github.com/robalobadob/slotword/internal/words"
)

// Puzzle is the resolved puzzle for one slot.
type Puzzle struct {
	Slot        int       `json:"slotIndex"`
	Label       string    `json:"label"`
	Date        string    `json:"date"`
	NextAt      time.Time `json:"nextAt"`
	Solution    string    `json:"solution,omitempty"`
	ListVersion string    `json:"listVersion"`
}

// Service resolves puzzles. Safe for concurrent use.
type Service struct {
	sched      schedule.Schedule
	salt       string
	maxGuesses int
	archive    store.Store // may be nil

	mu   sync.RWMutex // guards list and sel
	list *words.List
	sel  *selector.Selector
}

// New builds a service over list. archive may be nil.
func New(sched schedule.Schedule, salt string, maxGuesses int, list *words.List, archive store.Store) (*Service, error) {
	s := &Service{sched: sched, salt: salt, maxGuesses: maxGuesses, archive: archive}
	if err := s.Reload(list); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the word list. The previous list stays active on error.
func (s *Service) Reload(list *words.List) error {
	sel, err := selector.New(list.Answers(), s.salt)
	if err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}
	s.mu.Lock()
	s.list, s.sel = list, sel
	s.mu.Unlock()
	return nil
}

// At resolves the puzzle for now without side effects.
func (s *Service) At(now time.Time) (Puzzle, error) {
	slot, err := s.sched.Index(now)
	if err != nil {
		return Puzzle{}, err
	}
	s.mu.RLock()
	sel, version := s.sel, s.list.Version()
	s.mu.RUnlock()

	word, err := sel.Pick(slot)
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{
		Slot:        slot,
		Label:       s.sched.Label(now),
		Date:        s.sched.DateKey(now),
		NextAt:      s.sched.NextBoundary(now),
		Solution:    word,
		ListVersion: version,
	}, nil
}

// Current resolves the puzzle for now and records it in the archive.
// Archive failures are logged, not returned.
func (s *Service) Current(ctx context.Context, now time.Time) (Puzzle, error) {
	p, err := s.At(now)
	if err != nil {
		return Puzzle{}, err
	}
	if s.archive != nil {
		rec := store.Record{Slot: p.Slot, Date: p.Date, Label: p.Label, Word: p.Solution, ListVersion: p.ListVersion}
		if err := s.archive.Record(ctx, rec); err != nil {
			log.Warn().Err(err).Int("slot", p.Slot).Msg("archive puzzle")
		}
	}
	return p, nil
}

// History lists archived puzzles strictly before the current slot, so the
// live solution is never exposed.
func (s *Service) History(ctx context.Context, now time.Time, limit int) ([]store.Record, error) {
	if s.archive == nil {
		return []store.Record{}, nil
	}
	slot, err := s.sched.Index(now)
	if err != nil {
		return nil, err
	}
	return s.archive.List(ctx, slot, limit)
}

// NewSession starts a game for the puzzle at now, validating guesses
// against the active word list.
func (s *Service) NewSession(ctx context.Context, now time.Time) (*game.Session, error) {
	p, err := s.Current(ctx, now)
	if err != nil {
		return nil, err
	}
	return game.NewSession(p.Solution, p.Slot, p.Label, s.maxGuesses, s.List()), nil
}

// List returns the active word list.
func (s *Service) List() *words.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list
}

// Schedule returns the rotation schedule.
func (s *Service) Schedule() schedule.Schedule { return s.sched }

// Salt returns the shuffle salt.
func (s *Service) Salt() string { return s.salt }

// MaxGuesses returns the attempt budget per session.
func (s *Service) MaxGuesses() int { return s.maxGuesses }
