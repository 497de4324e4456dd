package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with a fresh output buffer.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetArgs(args)
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	err := RootCmd.Execute()
	return out.String(), err
}

// fixtureEnv points the commands at a five-word list in UTC. With the
// default salt the shuffled order is apple, mango, lemon, peach, grape.
func fixtureEnv(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`["apple","grape","mango","peach","lemon"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDS_FILE", path)
	t.Setenv("PUZZLE_TZ", "UTC")
	t.Setenv("PUZZLE_SALT", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestToday(t *testing.T) {
	fixtureEnv(t)
	out, err := run(t, "", "today", "--at", "2026-01-01T13:00:00Z", "--reveal")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	for _, want := range []string{
		"Slot:    1 (Afternoon)",
		"Date:    2026-01-01",
		"Next:    2026-01-01T18:00:00Z",
		"Answers: 5",
		"Answer:  mango",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestToday_BeforeEpoch(t *testing.T) {
	fixtureEnv(t)
	if _, err := run(t, "", "today", "--at", "2025-12-31T23:00:00Z", "--reveal=false"); err == nil {
		t.Error("expected an error before the epoch")
	}
}

func TestScoreCommand(t *testing.T) {
	fixtureEnv(t)
	out, err := run(t, "", "score", "LLAMA", "alarm")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.Contains(out, "absent exact exact present present") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := run(t, "", "score", "cat", "crane"); err == nil {
		t.Error("expected a length error")
	}
}

func TestPlay(t *testing.T) {
	fixtureEnv(t)
	in := "qqqqq\nab\nmango\napple\n"
	out, err := run(t, in, "play", "--at", "2026-01-01T01:00:00Z")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	for _, want := range []string{
		"Morning puzzle",
		"Not in word list",
		"Need 5 letters",
		"1/6",
		"Nice! You got it in 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlay_Loss(t *testing.T) {
	fixtureEnv(t)
	t.Setenv("MAX_GUESSES", "2")
	out, err := run(t, "grape\npeach\nlemon\n", "play", "--at", "2026-01-01T01:00:00Z")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "Out of guesses. Solution: APPLE") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "3/2") {
		t.Errorf("guess accepted after the game ended:\n%s", out)
	}
}

func TestBuildWords(t *testing.T) {
	fixtureEnv(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	os.WriteFile(a, []byte("Crane\nslate\nto\n"), 0o644)
	os.WriteFile(b, []byte("crane\nabide\n"), 0o644)

	out, err := run(t, "", "build-words", "-o", "-", "--length", "5", a, b)
	if err != nil {
		t.Fatalf("build-words: %v", err)
	}
	want := "[\n  \"abide\",\n  \"crane\",\n  \"slate\"\n]\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestHashPassword(t *testing.T) {
	fixtureEnv(t)
	out, err := run(t, "", "hash-password", "hunter2")
	if err != nil {
		t.Fatalf("hash-password: %v", err)
	}
	if !strings.HasPrefix(out, "$2a$") {
		t.Errorf("output = %q, want a bcrypt hash", out)
	}
}
