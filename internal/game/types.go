// internal/game/types.go
//
// Core type definitions for scoring and play.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - Feedback: one Mark per guess position.
//   - Session state strings.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the solution but in a different position.
//   - "absent":  letter has no remaining occurrence in the solution.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the per-position result of scoring one guess. It is built
// fresh by Score and never mutated afterwards.
type Feedback []Mark

// Solved reports whether every position is exact.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// String renders the feedback as a compact tile row (G/Y/.).
func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		switch m {
		case MarkExact:
			b.WriteByte('G')
		case MarkPresent:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Session states.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)
