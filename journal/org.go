package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradecal/pnl"
)

// FormatDayOrg renders a saved day as an Org-mode block. Structured facts
// go in the PROPERTIES drawer and the note becomes the body.
func FormatDayOrg(e Entry) string {
	cat := pnl.Classify(e.PnL)

	heading := fmt.Sprintf("** %s", e.Key)
	if t, err := e.Key.Time(time.UTC); err == nil {
		heading += " " + t.Weekday().String()[:3]
	}
	heading += " " + cat.String()

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":DATE: %s\n", e.Key))
	b.WriteString(fmt.Sprintf(":PNL: %s\n", pnl.FormatInput(e.PnL)))
	b.WriteString(fmt.Sprintf(":CATEGORY: %s\n", cat))
	b.WriteString(fmt.Sprintf(":COLOR: %s\n", cat.Color()))
	b.WriteString(":END:\n")
	if e.Note != "" {
		b.WriteString("\n")
		b.WriteString(e.Note)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatDaysOrg renders multiple days separated by blank lines.
func FormatDaysOrg(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDayOrg(e))
	}
	return b.String()
}
