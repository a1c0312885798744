package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ykvlv/nutricalc/internal/domain"
)

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6B7280")
)

// Table renders the micronutrients as an aligned, styled table.
type Table struct {
	NoColor bool
}

type tableStyles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	sep    lipgloss.Style
}

func (t Table) styles(w io.Writer) tableStyles {
	r := lipgloss.NewRenderer(w)
	if t.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return tableStyles{
		title:  r.NewStyle().Bold(true).Foreground(accent),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		sep:    r.NewStyle().Foreground(muted),
	}
}

// Render implements Renderer.
func (t Table) Render(w io.Writer, res domain.Result) error {
	st := t.styles(w)
	ew := &errWriter{w: w}
	writeSummary(ew, res)

	rows := make([][]string, 0, res.Micros.Len())
	for _, r := range res.Micros.Requirements() {
		rows = append(rows, []string{r.Name, DailyNeed(r), r.Note})
	}
	ew.println(st.title.Render(microTitle))
	ew.printf("%s", renderGrid(st, microHeaders, rows))
	writeNotes(ew)
	return ew.err
}

// renderGrid lays out headers and rows with a divider line and "|" separators.
func renderGrid(st tableStyles, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	// Width includes the horizontal padding.
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	var sb strings.Builder
	writeRow := func(style lipgloss.Style, cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			sb.WriteString(style.Width(widths[i]).Render(c))
			if i < len(widths)-1 {
				sb.WriteString(st.sep.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(st.header, headers)
	sb.WriteString(st.sep.Render(strings.Repeat("-", total)) + "\n")
	for _, row := range rows {
		writeRow(st.cell, row)
	}
	return sb.String()
}
