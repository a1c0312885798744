package assets

import (
	_ "embed"
	"strings"
)

//go:embed notes.txt
var notesText string

// Notes returns the closing remarks printed after every estimate, one per line.
func Notes() []string {
	var out []string
	for _, line := range strings.Split(notesText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
