// internal/selector/selector.go
//
// Deterministic puzzle selection.
// Responsibilities:
//   - StableShuffle: salted Fisher–Yates permutation, identical for the same
//     (items, salt) on every run and platform.
//   - Selector: holds one permutation of the candidate answers and maps a
//     slot index onto it (cyclic once the pool is exhausted).

package selector

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCandidates is returned when there is nothing to pick from.
	ErrNoCandidates = errors.New("selector: candidate list is empty")
	// ErrNegativeSlot is returned for slot indices below zero.
	ErrNegativeSlot = errors.New("selector: negative slot index")
)

// StableShuffle returns a salted permutation of items. The input slice is
// not modified.
func StableShuffle[T any](items []T, salt string) []T {
	out := append([]T(nil), items...)
	rng := NewMulberry32(Seed(salt))
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Selector maps slot indices onto a fixed permutation of answers.
type Selector struct {
	order []string
}

// New shuffles answers with salt. An empty list is rejected up front so
// Pick never divides by zero.
func New(answers []string, salt string) (*Selector, error) {
	if len(answers) == 0 {
		return nil, ErrNoCandidates
	}
	return &Selector{order: StableShuffle(answers, salt)}, nil
}

// Pick returns the lowercase answer for slot. Slots wrap around the
// permutation, so the schedule repeats after len(answers) slots.
func (s *Selector) Pick(slot int) (string, error) {
	if slot < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSlot, slot)
	}
	return strings.ToLower(s.order[slot%len(s.order)]), nil
}

// Len returns the number of candidate answers.
func (s *Selector) Len() int { return len(s.order) }

// Order returns a copy of the shuffled answers.
func (s *Selector) Order() []string { return append([]string(nil), s.order...) }
