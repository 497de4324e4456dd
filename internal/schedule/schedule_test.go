package schedule

import (
	"errors"
	"testing"
	"time"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestIndex_ReferenceSchedule(t *testing.T) {
	s := Default(time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"epoch midnight", utc(2026, 1, 1, 0, 0), 0},
		{"day 0 morning", utc(2026, 1, 1, 9, 0), 0},
		{"day 0 last morning minute", utc(2026, 1, 1, 11, 59), 0},
		{"day 0 afternoon", utc(2026, 1, 1, 12, 0), 1},
		{"day 0 evening", utc(2026, 1, 1, 18, 0), 2},
		{"day 1 morning", utc(2026, 1, 2, 0, 0), 3},
		{"day 1 evening", utc(2026, 1, 2, 23, 59), 5},
		{"day 31 afternoon", utc(2026, 2, 1, 15, 0), 31*3 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Index(tt.now)
			if err != nil {
				t.Fatalf("Index() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Index(%s) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestIndex_BeforeEpochRejected(t *testing.T) {
	s := Default(time.UTC)
	_, err := s.Index(utc(2025, 12, 31, 23, 0))
	if !errors.Is(err, ErrBeforeEpoch) {
		t.Fatalf("expected ErrBeforeEpoch, got %v", err)
	}
}

func TestIndex_UTCDayLocalSlotMismatch(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	s := Default(est)

	// 02:00 UTC on Jan 2 is 21:00 local on Jan 1: the day comes from the
	// UTC date (1) while the slot comes from the local hour (evening).
	now := utc(2026, 1, 2, 2, 0)
	got, err := s.Index(now)
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	if got != 1*3+2 {
		t.Errorf("Index() = %d, want 5", got)
	}
	if s.Label(now) != "Evening" {
		t.Errorf("Label() = %q, want Evening", s.Label(now))
	}
}

func TestDays_UsesCalendarDates(t *testing.T) {
	s, err := New(utc(2026, 1, 1, 23, 0), 3, nil, nil, time.UTC)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if d := s.Days(utc(2026, 1, 2, 1, 0)); d != 1 {
		t.Errorf("Days() = %d, want 1 (two hours elapsed but a new UTC date)", d)
	}
	if d := s.Days(utc(2026, 1, 1, 23, 59)); d != 0 {
		t.Errorf("Days() = %d, want 0", d)
	}
}

func TestIndex_SlotStability(t *testing.T) {
	s := Default(time.UTC)
	pairs := [][2]time.Time{
		{utc(2026, 3, 4, 0, 0), utc(2026, 3, 4, 11, 59)},
		{utc(2026, 3, 4, 12, 0), utc(2026, 3, 4, 17, 59)},
		{utc(2026, 3, 4, 18, 0), utc(2026, 3, 4, 23, 59)},
	}
	for _, p := range pairs {
		a, _ := s.Index(p[0])
		b, _ := s.Index(p[1])
		if a != b {
			t.Errorf("Index(%s)=%d and Index(%s)=%d should match", p[0], a, p[1], b)
		}
	}
}

func TestIndex_Monotonic(t *testing.T) {
	s := Default(time.UTC)
	longest := 12 * time.Hour
	for t1 := DefaultEpoch; t1.Before(DefaultEpoch.Add(10 * 24 * time.Hour)); t1 = t1.Add(37 * time.Minute) {
		t2 := t1.Add(longest + time.Minute)
		a, err := s.Index(t1)
		if err != nil {
			t.Fatalf("Index(%s) error = %v", t1, err)
		}
		b, err := s.Index(t2)
		if err != nil {
			t.Fatalf("Index(%s) error = %v", t2, err)
		}
		if b <= a {
			t.Fatalf("Index(%s)=%d not greater than Index(%s)=%d", t2, b, t1, a)
		}
	}
}

func TestLabel(t *testing.T) {
	s := Default(time.UTC)
	tests := []struct {
		hour int
		want string
	}{
		{0, "Morning"},
		{11, "Morning"},
		{12, "Afternoon"},
		{17, "Afternoon"},
		{18, "Evening"},
		{23, "Evening"},
	}
	for _, tt := range tests {
		if got := s.Label(utc(2026, 5, 5, tt.hour, 30)); got != tt.want {
			t.Errorf("Label(hour %d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestNextBoundary(t *testing.T) {
	s := Default(time.UTC)
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{utc(2026, 1, 1, 9, 0), utc(2026, 1, 1, 12, 0)},
		{utc(2026, 1, 1, 12, 0), utc(2026, 1, 1, 18, 0)},
		{utc(2026, 1, 1, 19, 0), utc(2026, 1, 2, 0, 0)},
		{utc(2026, 12, 31, 20, 0), utc(2027, 1, 1, 0, 0)},
	}
	for _, tt := range tests {
		if got := s.NextBoundary(tt.now); !got.Equal(tt.want) {
			t.Errorf("NextBoundary(%s) = %s, want %s", tt.now, got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	b := DefaultBoundaries(4)
	want := []int{0, 6, 12, 18}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("DefaultBoundaries(4) = %v, want %v", b, want)
		}
	}
	if l := DefaultLabels(1); len(l) != 1 || l[0] != "Daily" {
		t.Errorf("DefaultLabels(1) = %v", l)
	}
	if l := DefaultLabels(2); l[1] != "Slot 2" {
		t.Errorf("DefaultLabels(2) = %v", l)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		slots      int
		boundaries []int
		labels     []string
	}{
		{"zero slots", 0, nil, nil},
		{"too many slots", 25, nil, nil},
		{"boundary count mismatch", 3, []int{0, 12}, nil},
		{"label count mismatch", 2, nil, []string{"only"}},
		{"first boundary not zero", 2, []int{1, 12}, nil},
		{"not increasing", 3, []int{0, 12, 12}, nil},
		{"hour out of range", 2, []int{0, 24}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(DefaultEpoch, tt.slots, tt.boundaries, tt.labels, time.UTC)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("New() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSlotIndex_Functional(t *testing.T) {
	got, err := SlotIndex(utc(2026, 1, 3, 13, 0), DefaultEpoch, 3, time.UTC)
	if err != nil {
		t.Fatalf("SlotIndex() error = %v", err)
	}
	if got != 7 {
		t.Errorf("SlotIndex() = %d, want 7", got)
	}
	got, err = SlotIndex(utc(2026, 1, 3, 13, 0), DefaultEpoch, 1, time.UTC)
	if err != nil || got != 2 {
		t.Errorf("SlotIndex(1 slot) = %d, %v; want 2", got, err)
	}
}
