package assets

import (
	"embed"
)

// FS holds the default word list shipped with the binary.
//
//go:embed words.json
var FS embed.FS

// WordsJSON returns the embedded default word list (a JSON array of
// lowercase words).
func WordsJSON() ([]byte, error) {
	return FS.ReadFile("words.json")
}
