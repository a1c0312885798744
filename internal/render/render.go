// Package render formats a domain.Result for the terminal or for machines.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ykvlv/nutricalc/assets"
	"github.com/ykvlv/nutricalc/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format names accepted by New.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Renderer writes one result.
type Renderer interface {
	Render(w io.Writer, res domain.Result) error
}

// Options tune terminal output.
type Options struct {
	NoColor bool
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTable:
		return Table{NoColor: opts.NoColor}, nil
	case FormatPlain:
		return Plain{}, nil
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want table, plain or json)", ErrUnknownFormat, format)
	}
}

// FormatAmount prints a value without trailing zeros: 900, 1.2, 0.9.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DailyNeed joins amount and unit, e.g. "15 µg (600 IU)".
func DailyNeed(r domain.Requirement) string {
	return FormatAmount(r.Amount) + " " + r.Unit
}

// errWriter keeps the first write error so callers can check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	ew.printf("%s\n", s)
}

// writeSummary prints the profile echo, energy and macro sections shared by
// the plain and table layouts.
func writeSummary(ew *errWriter, res domain.Result) {
	p := res.Profile
	ew.println("")
	ew.println(resultTitle)
	ew.println("")
	ew.printf(profileFmt, FormatAmount(p.WeightKg), FormatAmount(p.HeightCm), p.Age, p.Sex)
	if res.HasLeanMass {
		ew.printf(leanMassFmt, FormatAmount(*p.BodyFatPct), res.LeanMassKg)
	}
	if p.Notes != "" {
		ew.printf(userNotesFmt, p.Notes)
	}
	ew.println("")
	ew.printf(bmrFmt, res.Energy.BMR)
	ew.printf(tdeeFmt, res.Energy.TDEE)
	ew.println("")
	ew.println(macrosTitle)
	ew.printf(proteinFmt, res.Macros.ProteinGPerDay, FormatAmount(res.Macros.ProteinGPerKg))
	ew.printf(fatFmt, res.Macros.FatGPerDay)
	ew.printf(carbsFmt, res.Macros.CarbsGPerDay)
	ew.println("")
}

func writeNotes(ew *errWriter) {
	ew.println("")
	ew.println(notesTitle)
	for _, n := range assets.Notes() {
		ew.println("- " + n)
	}
}
