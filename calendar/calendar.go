// Package calendar answers the per-day marker query of a calendar view.
package calendar

import (
	"time"

	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/journal"
	"github.com/rustyeddy/tradecal/pnl"
)

// Records is the read side of the journal.
type Records interface {
	Get(key datekey.Key) (journal.Record, bool)
}

// Decoration is the marker drawn on a saved day.
type Decoration struct {
	Key      datekey.Key
	Category pnl.Category
	Color    string
}

// Day is one cell of a month view. Marked is false for days with no
// record.
type Day struct {
	Date       time.Time
	Decoration Decoration
	Marked     bool
}

// Decorator derives day markers from the journal on every call.
type Decorator struct {
	records Records
}

// New returns a Decorator reading from records.
func New(records Records) *Decorator {
	return &Decorator{records: records}
}

// Decorate returns the marker for the day t falls on, or false when
// nothing was saved for it.
func (d *Decorator) Decorate(t time.Time) (Decoration, bool) {
	key := datekey.Normalize(t)
	rec, ok := d.records.Get(key)
	if !ok {
		return Decoration{}, false
	}
	cat := pnl.Classify(rec.PnL)
	return Decoration{Key: key, Category: cat, Color: cat.Color()}, true
}

// Month decorates every day of the month, first to last. A nil loc means
// time.Local.
func (d *Decorator) Month(year int, month time.Month, loc *time.Location) []Day {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	var days []Day
	for t := first; t.Month() == month; t = t.AddDate(0, 0, 1) {
		dec, ok := d.Decorate(t)
		days = append(days, Day{Date: t, Decoration: dec, Marked: ok})
	}
	return days
}
