// internal/words/build.go
//
// Word list builder: merges plain-text dictionaries (one word per line)
// into the JSON list the game loads. Keeps only lowercase ASCII words of
// the requested length, deduped and sorted.

package words

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Build merges sources into a sorted, deduplicated list of length-letter
// words. Lines are trimmed and lowercased before filtering.
func Build(sources []io.Reader, length int) ([]string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	seen := make(map[string]struct{})
	for i, src := range sources {
		sc := bufio.NewScanner(src)
		for sc.Scan() {
			w := strings.ToLower(strings.TrimSpace(sc.Text()))
			if len(w) == length && isAlpha(w) {
				seen[w] = struct{}{}
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("words: read source %d: %w", i, err)
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

// WriteJSON writes list as an indented JSON array followed by a newline.
func WriteJSON(w io.Writer, list []string) error {
	if list == nil {
		list = []string{}
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
