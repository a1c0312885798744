package assets

import (
	"strings"
	"testing"
)

func TestNotes(t *testing.T) {
	notes := Notes()
	if len(notes) != 4 {
		t.Fatalf("want 4 notes, got %d", len(notes))
	}
	for _, n := range notes {
		if strings.TrimSpace(n) != n || n == "" {
			t.Fatalf("untrimmed note %q", n)
		}
	}
}
