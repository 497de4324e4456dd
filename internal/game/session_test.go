package game

import (
	"errors"
	"testing"
)

type dict map[string]bool

func (d dict) IsAllowed(w string) bool { return d[w] }

func newTestSession(rows int) *Session {
	return NewSession("ALARM", 4, "Afternoon", rows, dict{"alarm": true, "llama": true, "crane": true})
}

func TestSession_TypingAndBackspace(t *testing.T) {
	s := newTestSession(0)
	if s.Rows != DefaultRows || s.Cols != 5 {
		t.Fatalf("dimensions %dx%d, want %dx5", s.Rows, s.Cols, DefaultRows)
	}
	for _, r := range "CRaNe!" {
		s.AppendLetter(r)
	}
	if s.Current() != "crane" {
		t.Errorf("Current() = %q, want crane", s.Current())
	}
	if s.AppendLetter('x') {
		t.Error("full row should reject letters")
	}
	s.Backspace()
	s.Backspace()
	if s.Current() != "cra" {
		t.Errorf("after backspace Current() = %q, want cra", s.Current())
	}
	if _, err := s.Submit(); !errors.Is(err, ErrWrongLength) {
		t.Errorf("short row error = %v, want ErrWrongLength", err)
	}
	if s.Current() != "cra" {
		t.Error("rejected row should be kept for editing")
	}
}

func TestSession_NotInList(t *testing.T) {
	s := newTestSession(0)
	if _, err := s.Guess("zzzzz"); !errors.Is(err, ErrNotInList) {
		t.Fatalf("error = %v, want ErrNotInList", err)
	}
	if len(s.Guesses()) != 0 {
		t.Error("rejected guess must not use an attempt")
	}
	if _, err := s.Guess("cr4ne"); !errors.Is(err, ErrInvalidLetter) {
		t.Errorf("error = %v, want ErrInvalidLetter", err)
	}
}

func TestSession_GuessWrongLengthClearsRow(t *testing.T) {
	s := newTestSession(0)
	s.AppendLetter('q')
	if _, err := s.Guess("cranes"); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("error = %v, want ErrWrongLength", err)
	}
	if s.Current() != "" {
		t.Errorf("Current() = %q, want empty row", s.Current())
	}
	if !s.AppendLetter('x') {
		t.Error("row should accept letters after a rejected guess")
	}
	if _, err := s.Guess("cra"); !errors.Is(err, ErrWrongLength) {
		t.Errorf("short guess error = %v, want ErrWrongLength", err)
	}
	if len(s.Guesses()) != 0 {
		t.Error("rejected guesses must not use an attempt")
	}
}

func TestSession_Win(t *testing.T) {
	s := newTestSession(0)
	fb, err := s.Guess("llama")
	if err != nil {
		t.Fatalf("Guess() error = %v", err)
	}
	if fb.String() != ".GGYY" {
		t.Errorf("feedback = %s, want .GGYY", fb)
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %s, want playing", s.State())
	}
	if _, ok := s.Answer(); ok {
		t.Error("answer must stay hidden while playing")
	}
	if s.Message() != "Afternoon puzzle" {
		t.Errorf("Message() = %q", s.Message())
	}

	fb, err = s.Guess("ALARM")
	if err != nil {
		t.Fatalf("Guess() error = %v", err)
	}
	if !fb.Solved() || s.State() != StateWon {
		t.Fatalf("expected win, state %s", s.State())
	}
	if s.Message() != "Nice! You got it in 2" {
		t.Errorf("Message() = %q", s.Message())
	}
	if _, err := s.Guess("crane"); !errors.Is(err, ErrFinished) {
		t.Errorf("guess after win error = %v, want ErrFinished", err)
	}
	if len(s.History()) != 2 {
		t.Errorf("History() has %d rows, want 2", len(s.History()))
	}
}

func TestSession_Loss(t *testing.T) {
	s := newTestSession(2)
	for i := 0; i < 2; i++ {
		if _, err := s.Guess("crane"); err != nil {
			t.Fatalf("Guess() error = %v", err)
		}
	}
	if s.State() != StateLost {
		t.Fatalf("State() = %s, want lost", s.State())
	}
	if ans, ok := s.Answer(); !ok || ans != "alarm" {
		t.Errorf("Answer() = %q, %v", ans, ok)
	}
	if s.Message() != "Out of guesses. Solution: ALARM" {
		t.Errorf("Message() = %q", s.Message())
	}
	if s.AppendLetter('a') || s.Backspace() {
		t.Error("finished session should ignore input")
	}
}

func TestSession_NilDictionaryAcceptsAll(t *testing.T) {
	s := NewSession("crane", 0, "", 0, nil)
	if _, err := s.Guess("zzzzz"); err != nil {
		t.Errorf("Guess() error = %v", err)
	}
	if s.ID == "" || len(s.ID) != 26 {
		t.Errorf("ID = %q, want a ULID", s.ID)
	}
}
