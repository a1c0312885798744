package render

import (
	"io"

	"github.com/ykvlv/nutricalc/internal/domain"
)

// Plain renders fixed-width text with no styling.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(w io.Writer, res domain.Result) error {
	ew := &errWriter{w: w}
	writeSummary(ew, res)
	ew.println(microTitle)
	ew.println("")
	for _, r := range res.Micros.Requirements() {
		ew.printf(plainMicroFmt, r.Name, DailyNeed(r), r.Note)
	}
	writeNotes(ew)
	return ew.err
}
