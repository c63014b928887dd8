package calendar

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/tradecal/pnl"
)

const Legend = "+ Profit  - Loss  0 No Trade  . Unset"

// Glyph is the single character drawn after a day number.
func Glyph(day Day) byte {
	if !day.Marked {
		return '.'
	}
	switch day.Decoration.Category {
	case pnl.Profit:
		return '+'
	case pnl.Loss:
		return '-'
	default:
		return '0'
	}
}

// RenderMonth draws days (as returned by Month) as a Monday-first grid.
func RenderMonth(w io.Writer, days []Day) error {
	if len(days) == 0 {
		return nil
	}
	first := days[0].Date

	var b strings.Builder
	title := first.Format("January 2006")
	b.WriteString(strings.Repeat(" ", (28-len(title))/2))
	b.WriteString(title)
	b.WriteString("\n")
	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		fmt.Fprintf(&b, "%4s", wd)
	}
	b.WriteString("\n")

	var line strings.Builder
	col := (int(first.Weekday()) + 6) % 7
	line.WriteString(strings.Repeat("    ", col))
	for _, d := range days {
		fmt.Fprintf(&line, "%3d%c", d.Date.Day(), Glyph(d))
		col++
		if col == 7 {
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteString("\n")
			line.Reset()
			col = 0
		}
	}
	if line.Len() > 0 {
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	b.WriteString(Legend)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
