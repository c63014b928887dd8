package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradecal/datekey"
)

func TestWithDoesNotModifyReceiver(t *testing.T) {
	t.Parallel()

	m := RecordMap{"2024-03-21": {PnL: 1}}
	n := m.With("2024-03-21", Record{PnL: 2, Note: "x"})

	assert.Equal(t, 1.0, m["2024-03-21"].PnL)
	assert.Equal(t, Record{PnL: 2, Note: "x"}, n["2024-03-21"])
}

func TestKeysAndBetween(t *testing.T) {
	t.Parallel()

	m := RecordMap{
		"2024-04-01": {PnL: 3},
		"2024-03-21": {PnL: 1},
		"2024-02-29": {PnL: -1},
		"2024-03-31": {PnL: 2},
	}

	assert.Equal(t, []datekey.Key{"2024-02-29", "2024-03-21", "2024-03-31", "2024-04-01"}, m.Keys())

	got := m.Between("2024-03-01", "2024-03-31")
	assert.Equal(t, []Entry{
		{Key: "2024-03-21", Record: Record{PnL: 1}},
		{Key: "2024-03-31", Record: Record{PnL: 2}},
	}, got)

	assert.Empty(t, m.Between("2025-01-01", "2025-01-31"))
}
