// Package session keeps the edit form for the selected day in step with
// the journal.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/journal"
	"github.com/rustyeddy/tradecal/pnl"
)

// Session is the working copy of one day's form fields. The journal stays
// the source of truth; nothing here is written back until Commit.
type Session struct {
	store *journal.Store
	log   *zap.Logger

	selected  time.Time
	pnlInput  string
	noteInput string
}

// New starts a session on the given date.
func New(store *journal.Store, date time.Time, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{store: store, log: log.Named("session")}
	s.SelectDate(date)
	return s
}

// SelectDate moves the form to date and refills the fields from the
// journal. Unsaved edits for the previous date are dropped.
func (s *Session) SelectDate(date time.Time) {
	s.selected = date
	s.sync()
}

func (s *Session) sync() {
	s.pnlInput, s.noteInput = s.derived()
}

func (s *Session) derived() (pnlText, note string) {
	rec, ok := s.store.Get(s.Key())
	if !ok {
		return "", ""
	}
	return pnl.FormatInput(rec.PnL), rec.Note
}

// Dirty reports whether saving now would change what is stored for the
// selected day. The P&L field is compared by the value it would save.
func (s *Session) Dirty() bool {
	rec, ok := s.store.Get(s.Key())
	if !ok {
		return s.pnlInput != "" || s.noteInput != ""
	}
	v, _ := pnl.ParseInput(s.pnlInput)
	return v != rec.PnL || s.noteInput != rec.Note
}

// UpdatePnlInput replaces the P&L field text; it is not validated.
func (s *Session) UpdatePnlInput(text string) { s.pnlInput = text }

// UpdateNoteInput replaces the note field text.
func (s *Session) UpdateNoteInput(text string) { s.noteInput = text }

// Commit saves the form for the selected day, replacing any earlier
// record. P&L text that is empty or not a number is saved as 0. The
// returned error is always a *journal.PersistError: the record is kept in
// memory either way.
func (s *Session) Commit() (datekey.Key, journal.Record, error) {
	key := s.Key()

	v, ok := pnl.ParseInput(s.pnlInput)
	if !ok {
		s.log.Debug("pnl input not numeric, saving 0", zap.String("date", key.String()), zap.String("input", s.pnlInput))
	}

	rec := journal.Record{PnL: v, Note: s.noteInput}
	_, err := s.store.Save(key, rec)
	return key, rec, err
}

// Selected returns the selected date as it was given.
func (s *Session) Selected() time.Time { return s.selected }

// Key returns the calendar day of the selection.
func (s *Session) Key() datekey.Key { return datekey.Normalize(s.selected) }

// PnlInput returns the current P&L field text.
func (s *Session) PnlInput() string { return s.pnlInput }

// NoteInput returns the current note field text.
func (s *Session) NoteInput() string { return s.noteInput }
