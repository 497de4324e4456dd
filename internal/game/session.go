// internal/game/session.go
//
// Session is the state of one puzzle being played: the answer for a slot,
// the letter row being typed, and the history of submitted guesses.
// Responsibilities:
//   - Input editing: AppendLetter / Backspace on the current row.
//   - Submission: length check, dictionary check, scoring, win/loss.
//   - Reporting: State() and a user-facing Message().
//
// A Session is owned by the UI collaborator that created it (one per slot);
// it is not safe for concurrent use.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	DefaultRows = 6
	DefaultCols = 5
)

var (
	ErrWrongLength   = errors.New("wrong length")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrNotInList     = errors.New("not in word list")
	ErrFinished      = errors.New("game finished")
)

// Dictionary validates guesses. A nil Dictionary accepts every word.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Session holds a single game in progress or finished.
type Session struct {
	ID    string // ULID, sortable by creation time
	Slot  int    // slot index the answer was selected for
	Label string // slot label, e.g. "Morning"
	Rows  int    // maximum number of guesses
	Cols  int    // letters per word

	answer   string
	dict     Dictionary
	row      []rune
	guesses  []string
	feedback []Feedback
	finished bool
	won      bool
}

// NewSession starts a game for answer. rows <= 0 selects DefaultRows.
func NewSession(answer string, slot int, label string, rows int, dict Dictionary) *Session {
	if rows <= 0 {
		rows = DefaultRows
	}
	answer = strings.ToLower(answer)
	return &Session{
		ID:     ulid.Make().String(),
		Slot:   slot,
		Label:  label,
		Rows:   rows,
		Cols:   len([]rune(answer)),
		answer: answer,
		dict:   dict,
	}
}

// AppendLetter adds r to the current row. Non a–z letters, a full row and a
// finished game are ignored; the return value reports whether r was taken.
func (s *Session) AppendLetter(r rune) bool {
	if s.finished || len(s.row) >= s.Cols {
		return false
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return false
	}
	s.row = append(s.row, r)
	return true
}

// Backspace removes the last letter of the current row.
func (s *Session) Backspace() bool {
	if s.finished || len(s.row) == 0 {
		return false
	}
	s.row = s.row[:len(s.row)-1]
	return true
}

// Current returns the letters typed on the current row.
func (s *Session) Current() string { return string(s.row) }

// Submit scores the current row.
//
// Validation rules:
//   - Game must not be finished.
//   - Row must hold exactly Cols letters (ErrWrongLength, row kept).
//   - Row must be in the dictionary (ErrNotInList, row kept).
//
// State transitions:
//   - All marks exact → won.
//   - Rows guesses used → lost.
func (s *Session) Submit() (Feedback, error) {
	if s.finished {
		return nil, ErrFinished
	}
	if len(s.row) != s.Cols {
		return nil, fmt.Errorf("%w: need %d letters", ErrWrongLength, s.Cols)
	}
	guess := string(s.row)
	if s.dict != nil && !s.dict.IsAllowed(guess) {
		return nil, ErrNotInList
	}

	fb, err := Score(guess, s.answer)
	if err != nil {
		return nil, err
	}
	s.guesses = append(s.guesses, guess)
	s.feedback = append(s.feedback, fb)
	s.row = s.row[:0]

	if fb.Solved() {
		s.finished, s.won = true, true
	} else if len(s.guesses) >= s.Rows {
		s.finished = true
	}
	return fb, nil
}

// Guess replaces the current row with word and submits it. A word of the
// wrong length or with letters outside a–z leaves the row empty.
func (s *Session) Guess(word string) (Feedback, error) {
	if s.finished {
		return nil, ErrFinished
	}
	letters := []rune(strings.ToLower(strings.TrimSpace(word)))
	s.row = s.row[:0]
	if len(letters) != s.Cols {
		return nil, fmt.Errorf("%w: need %d letters", ErrWrongLength, s.Cols)
	}
	for _, r := range letters {
		if r < 'a' || r > 'z' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
		}
	}
	s.row = append(s.row, letters...)
	return s.Submit()
}

// State reports "playing", "won" or "lost".
func (s *Session) State() string {
	if s.finished {
		if s.won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Guesses returns the submitted guesses in order.
func (s *Session) Guesses() []string { return append([]string(nil), s.guesses...) }

// History returns the feedback rows in submission order.
func (s *Session) History() []Feedback { return append([]Feedback(nil), s.feedback...) }

// Answer reveals the solution once the game is over.
func (s *Session) Answer() (string, bool) {
	if !s.finished {
		return "", false
	}
	return s.answer, true
}

// Message is the status line shown to the player.
func (s *Session) Message() string {
	switch s.State() {
	case StateWon:
		return fmt.Sprintf("Nice! You got it in %d", len(s.guesses))
	case StateLost:
		return "Out of guesses. Solution: " + strings.ToUpper(s.answer)
	}
	if s.Label != "" {
		return s.Label + " puzzle"
	}
	return ""
}
