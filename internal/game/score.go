// internal/game/score.go
//
// Guess scoring with Wordle duplicate-letter semantics.

package game

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by Score when guess and solution differ in
// length. Callers are expected to validate length first.
var ErrLengthMismatch = errors.New("game: guess and solution lengths differ")

// Score compares guess against solution.
//
// Pass 1: count every letter of the solution.
// Pass 2: mark exact positions and consume their letters.
// Pass 3: for the remaining positions, mark present while the letter still
// has unconsumed occurrences, otherwise absent.
//
// A letter is therefore never reported exact/present more times than it
// occurs in the solution.
func Score(guess, solution string) (Feedback, error) {
	g, s := []rune(guess), []rune(solution)
	if len(g) != len(s) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(g), len(s))
	}

	remaining := make(map[rune]int, len(s))
	for _, r := range s {
		remaining[r]++
	}

	out := make(Feedback, len(g))
	for i := range g {
		if g[i] == s[i] {
			out[i] = MarkExact
			remaining[g[i]]--
		}
	}

	for i := range g {
		if out[i] == MarkExact {
			continue
		}
		if remaining[g[i]] > 0 {
			out[i] = MarkPresent
			remaining[g[i]]--
		} else {
			out[i] = MarkAbsent
		}
	}
	return out, nil
}
