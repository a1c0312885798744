package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ykvlv/nutricalc/internal/domain"
)

// Reference writes only the micronutrient table in the given format.
func Reference(w io.Writer, tbl *domain.Table, format string, opts Options) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTable:
		st := Table{NoColor: opts.NoColor}.styles(w)
		rows := make([][]string, 0, tbl.Len())
		for _, r := range tbl.Requirements() {
			rows = append(rows, []string{r.Name, DailyNeed(r), r.Note})
		}
		_, err := io.WriteString(w, renderGrid(st, microHeaders, rows))
		return err
	case FormatPlain:
		ew := &errWriter{w: w}
		for _, r := range tbl.Requirements() {
			ew.printf(plainMicroFmt, r.Name, DailyNeed(r), r.Note)
		}
		return ew.err
	case FormatJSON:
		list := make([]jsonNutrient, 0, tbl.Len())
		for _, r := range tbl.Requirements() {
			list = append(list, jsonNutrient(r))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(list)
	default:
		return fmt.Errorf("%w: %q (want table, plain or json)", ErrUnknownFormat, format)
	}
}
