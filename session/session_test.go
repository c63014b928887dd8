package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/journal"
	"github.com/rustyeddy/tradecal/kv"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 15, 4, 5, 0, time.UTC)
}

func newTestSession(t *testing.T) (*Session, *journal.Store, *kv.MemoryStore) {
	t.Helper()

	backend := kv.NewMemory()
	store := journal.New(backend, "tradingRecords", nil)
	store.Load()
	return New(store, day(21), nil), store, backend
}

func TestSelectEmptyDay(t *testing.T) {
	t.Parallel()

	s, store, _ := newTestSession(t)
	s.SelectDate(day(23))

	assert.Equal(t, datekey.Key("2024-03-23"), s.Key())
	assert.Equal(t, "", s.PnlInput())
	assert.Equal(t, "", s.NoteInput())
	assert.False(t, s.Dirty())

	_, ok := store.Get("2024-03-23")
	assert.False(t, ok, "selecting must not create a record")
}

func TestCommitSavesRecord(t *testing.T) {
	t.Parallel()

	s, store, _ := newTestSession(t)
	s.UpdatePnlInput("150.5")
	s.UpdateNoteInput("good trend trade")

	key, rec, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, datekey.Key("2024-03-21"), key)
	assert.Equal(t, journal.Record{PnL: 150.5, Note: "good trend trade"}, rec)

	got, ok := store.Get("2024-03-21")
	require.True(t, ok)
	assert.Equal(t, rec, got)

	// Fields already reflect the save.
	assert.Equal(t, "150.5", s.PnlInput())
	assert.Equal(t, "good trend trade", s.NoteInput())
	assert.False(t, s.Dirty())
}

func TestSelectRefillsFromJournal(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestSession(t)
	s.UpdatePnlInput("-40")
	_, _, err := s.Commit()
	require.NoError(t, err)

	s.SelectDate(day(22))
	assert.Equal(t, "", s.PnlInput())

	// Another time of day on the 21st is the same day.
	s.SelectDate(time.Date(2024, 3, 21, 0, 0, 1, 0, time.UTC))
	assert.Equal(t, "-40", s.PnlInput())
	assert.Equal(t, "", s.NoteInput())
}

func TestSelectDropsUnsavedEdits(t *testing.T) {
	t.Parallel()

	s, store, _ := newTestSession(t)
	s.UpdatePnlInput("99")
	s.UpdateNoteInput("draft")
	assert.True(t, s.Dirty())

	s.SelectDate(day(22))
	s.SelectDate(day(21))

	assert.Equal(t, "", s.PnlInput())
	assert.Equal(t, "", s.NoteInput())
	assert.Empty(t, store.Records(), "navigation never writes")
}

func TestCommitOverwritesFully(t *testing.T) {
	t.Parallel()

	s, store, _ := newTestSession(t)
	s.UpdatePnlInput("150.5")
	s.UpdateNoteInput("good trend trade")
	_, _, err := s.Commit()
	require.NoError(t, err)

	s.UpdatePnlInput("0")
	s.UpdateNoteInput("")
	_, _, err = s.Commit()
	require.NoError(t, err)

	got, _ := store.Get("2024-03-21")
	assert.Equal(t, journal.Record{PnL: 0, Note: ""}, got)
}

func TestCommitCoercesInvalidPnlToZero(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "12abc", "  "} {
		s, store, _ := newTestSession(t)
		s.UpdatePnlInput(in)
		s.UpdateNoteInput("n")

		_, rec, err := s.Commit()
		require.NoError(t, err)
		assert.Equal(t, 0.0, rec.PnL, in)

		got, ok := store.Get("2024-03-21")
		require.True(t, ok, in)
		assert.Equal(t, journal.Record{PnL: 0, Note: "n"}, got, in)
	}
}

func TestCommitPersistFailureKeepsSession(t *testing.T) {
	t.Parallel()

	s, store, backend := newTestSession(t)
	backend.FailWrites(errors.New("quota exceeded"))

	s.UpdatePnlInput("5")
	key, rec, err := s.Commit()

	var perr *journal.PersistError
	require.ErrorAs(t, err, &perr)

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, rec, got)
	assert.Equal(t, "5", s.PnlInput())
}

func TestCommitOverflowingPnlKeepsStoreWritable(t *testing.T) {
	t.Parallel()

	s, store, backend := newTestSession(t)
	s.UpdatePnlInput("1e400")
	_, rec, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, 0.0, rec.PnL)

	s.SelectDate(day(22))
	s.UpdatePnlInput("5")
	_, _, err = s.Commit()
	require.NoError(t, err)

	raw, found, err := backend.Get("tradingRecords")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"2024-03-21":{"pnl":0,"note":""},"2024-03-22":{"pnl":5,"note":""}}`, raw)

	assert.NotPanics(t, func() { s.SelectDate(day(21)) })
	assert.Equal(t, "0", s.PnlInput())
	_, ok := store.Get("2024-03-21")
	assert.True(t, ok)
}

func TestDirtyComparesSavedValue(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestSession(t)
	assert.False(t, s.Dirty())

	s.UpdatePnlInput("abc")
	assert.True(t, s.Dirty(), "nothing saved yet")

	_, _, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, "abc", s.PnlInput())
	assert.False(t, s.Dirty())

	s.UpdatePnlInput("0.00")
	assert.False(t, s.Dirty())

	s.UpdateNoteInput("changed")
	assert.True(t, s.Dirty())
}
