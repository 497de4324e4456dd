// internal/schedule/schedule.go
//
// Puzzle rotation schedule.
// Responsibilities:
//   - Map an instant to a SlotIndex: whole UTC calendar days since the epoch
//     times slots-per-day, plus the slot of the day.
//   - Map an instant to a human-readable slot label ("Morning", ...).
//   - Report when the next slot starts (client countdowns).
//
// Known inconsistency (kept for compatibility with deployed clients):
//   the day count uses UTC calendar dates while the slot of day uses the
//   LOCAL hour in Schedule.Location. Around local midnight the two can
//   disagree, so the index is only monotonic when Location is UTC.

package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrBeforeEpoch is returned when an instant falls on a UTC date before
// the schedule epoch. Negative slot indices are never produced.
var ErrBeforeEpoch = errors.New("schedule: instant is before epoch")

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("schedule: invalid configuration")

// DefaultEpoch is day zero of the reference schedule.
var DefaultEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultSlotsPerDay is the reference rotation: morning, afternoon, evening.
const DefaultSlotsPerDay = 3

// Schedule describes how puzzles rotate. The zero value is not usable;
// construct with New.
type Schedule struct {
	Epoch       time.Time      // day zero; only its UTC calendar date matters
	SlotsPerDay int            // >= 1
	Boundaries  []int          // local start hour of each slot, first is 0
	Labels      []string       // one label per slot
	Location    *time.Location // zone used for the slot of day
}

// New builds a validated schedule. Nil boundaries or labels are derived
// from slotsPerDay; a nil location means time.Local.
func New(epoch time.Time, slotsPerDay int, boundaries []int, labels []string, loc *time.Location) (Schedule, error) {
	if loc == nil {
		loc = time.Local
	}
	if slotsPerDay < 1 || slotsPerDay > 24 {
		return Schedule{}, fmt.Errorf("%w: slots per day must be 1..24, got %d", ErrInvalid, slotsPerDay)
	}
	if len(boundaries) == 0 {
		boundaries = DefaultBoundaries(slotsPerDay)
	}
	if len(labels) == 0 {
		labels = DefaultLabels(slotsPerDay)
	}
	s := Schedule{
		Epoch:       epoch,
		SlotsPerDay: slotsPerDay,
		Boundaries:  append([]int(nil), boundaries...),
		Labels:      append([]string(nil), labels...),
		Location:    loc,
	}
	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

// Default returns the reference schedule (2026-01-01 epoch, three slots)
// evaluated in loc.
func Default(loc *time.Location) Schedule {
	s, _ := New(DefaultEpoch, DefaultSlotsPerDay, nil, nil, loc)
	return s
}

// DefaultBoundaries returns the start hours for n slots. Three slots use
// the reference split 0/12/18; other counts divide the day evenly.
func DefaultBoundaries(n int) []int {
	if n == 3 {
		return []int{0, 12, 18}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i * 24 / n
	}
	return out
}

// DefaultLabels returns presentational names for n slots.
func DefaultLabels(n int) []string {
	switch n {
	case 1:
		return []string{"Daily"}
	case 3:
		return []string{"Morning", "Afternoon", "Evening"}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Slot %d", i+1)
	}
	return out
}

// Validate checks the schedule invariants.
func (s Schedule) Validate() error {
	if s.SlotsPerDay < 1 {
		return fmt.Errorf("%w: slots per day must be >= 1", ErrInvalid)
	}
	if len(s.Boundaries) != s.SlotsPerDay {
		return fmt.Errorf("%w: %d boundaries for %d slots", ErrInvalid, len(s.Boundaries), s.SlotsPerDay)
	}
	if len(s.Labels) != s.SlotsPerDay {
		return fmt.Errorf("%w: %d labels for %d slots", ErrInvalid, len(s.Labels), s.SlotsPerDay)
	}
	if s.Boundaries[0] != 0 {
		return fmt.Errorf("%w: first boundary must be hour 0", ErrInvalid)
	}
	for i, h := range s.Boundaries {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: boundary hour %d out of range", ErrInvalid, h)
		}
		if i > 0 && h <= s.Boundaries[i-1] {
			return fmt.Errorf("%w: boundaries must be strictly increasing", ErrInvalid)
		}
	}
	if s.Location == nil {
		return fmt.Errorf("%w: nil location", ErrInvalid)
	}
	return nil
}

// Days returns the number of whole UTC calendar days between the epoch and
// now. Computed on date components so DST and leap seconds never skew it.
// The result is negative when now is on an earlier UTC date.
func (s Schedule) Days(now time.Time) int {
	return int(utcMidnight(now).Sub(utcMidnight(s.Epoch)) / (24 * time.Hour))
}

// Slot returns the 0-based slot of day for the local hour of now.
func (s Schedule) Slot(now time.Time) int {
	h := now.In(s.Location).Hour()
	slot := 0
	for i, b := range s.Boundaries {
		if h >= b {
			slot = i
		}
	}
	return slot
}

// Index returns days*SlotsPerDay + slot. Instants on a UTC date before the
// epoch yield ErrBeforeEpoch.
func (s Schedule) Index(now time.Time) (int, error) {
	days := s.Days(now)
	if days < 0 {
		return 0, fmt.Errorf("%w: %s < %s", ErrBeforeEpoch, s.DateKey(now), s.DateKey(s.Epoch))
	}
	return days*s.SlotsPerDay + s.Slot(now), nil
}

// Label returns the presentational name of the slot now falls in.
func (s Schedule) Label(now time.Time) string {
	return s.Labels[s.Slot(now)]
}

// DateKey returns the UTC calendar date (YYYY-MM-DD) used for the day count.
func (s Schedule) DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NextBoundary returns the instant at which the slot after now begins,
// expressed in Location.
func (s Schedule) NextBoundary(now time.Time) time.Time {
	local := now.In(s.Location)
	y, m, d := local.Date()
	for _, b := range s.Boundaries {
		t := time.Date(y, m, d, b, 0, 0, 0, s.Location)
		if t.After(local) {
			return t
		}
	}
	return time.Date(y, m, d+1, s.Boundaries[0], 0, 0, 0, s.Location)
}

// SlotIndex is the functional form of Schedule.Index for the default
// boundaries of slotsPerDay, evaluated in loc.
func SlotIndex(now, epoch time.Time, slotsPerDay int, loc *time.Location) (int, error) {
	s, err := New(epoch, slotsPerDay, nil, nil, loc)
	if err != nil {
		return 0, err
	}
	return s.Index(now)
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
