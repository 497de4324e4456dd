// internal/words/words.go
//
// Word list management.
//
// Responsibilities:
//   - Parse the JSON word list (array of strings).
//   - Split it into the allowed-guess set (every entry, lowercased) and the
//     ordered candidate answers (raw entries whose length in UTF-16 code
//     units equals the configured length).
//   - Load from a file, or fall back to the list embedded in assets.
//
// Constraints:
//   • Entries are kept verbatim. Answers keep input order, case and
//     duplicates: the shuffle downstream must see the same sequence every
//     client sees. Lowercasing happens when a word is picked.
//   • Character rules (a–z only) belong to Build, not to Parse.
//   • A List is immutable once built.

package words

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/robalobadob/slotword/assets"
)

// DefaultLength is the fixed word length of the puzzle.
const DefaultLength = 5

// ErrNoAnswers is returned when a list has no entry of the puzzle length.
var ErrNoAnswers = errors.New("words: no candidate answers of the configured length")

// List is a loaded word list.
type List struct {
	length  int
	words   []string            // all entries, verbatim
	answers []string            // fixed-length entries, input order
	allowed map[string]struct{} // every entry, lowercased
	version string
}

// Parse decodes a JSON array of words.
func Parse(data []byte, length int) (*List, error) {
	if length <= 0 {
		length = DefaultLength
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("words: decode list: %w", err)
	}
	l := &List{
		length:  length,
		allowed: make(map[string]struct{}, len(raw)),
	}
	l.words = raw
	for _, w := range raw {
		l.allowed[strings.ToLower(w)] = struct{}{}
		if unitLen(w) == length {
			l.answers = append(l.answers, w)
		}
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	sum := sha256.Sum256([]byte(strings.Join(l.words, "\n")))
	l.version = hex.EncodeToString(sum[:6])
	return l, nil
}

// Load reads a list from path, or the embedded default when path is empty.
func Load(path string, length int) (*List, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.WordsJSON()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: read %q: %w", path, err)
	}
	return Parse(data, length)
}

// Length returns the configured word length.
func (l *List) Length() int { return l.length }

// Answers returns a copy of the candidate answers in list order.
func (l *List) Answers() []string { return append([]string(nil), l.answers...) }

// Words returns a copy of every entry (the allowed-guess list).
func (l *List) Words() []string { return append([]string(nil), l.words...) }

// IsAllowed reports whether w is a valid guess. Case is ignored.
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is a candidate answer. Case is ignored.
func (l *List) IsAnswer(w string) bool {
	return unitLen(w) == l.length && l.IsAllowed(w)
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

// Version is a short content hash identifying this list.
func (l *List) Version() string { return l.version }

// MarshalJSON encodes the list in the same shape it was loaded from.
func (l *List) MarshalJSON() ([]byte, error) { return json.Marshal(l.words) }

// unitLen is the length of s in UTF-16 code units, the length a browser
// client sees for the same entry.
func unitLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
