package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDayOrg(t *testing.T) {
	t.Parallel()

	result := FormatDayOrg(Entry{
		Key:    "2024-03-21",
		Record: Record{PnL: 150.5, Note: "good trend trade"},
	})

	assert.True(t, strings.HasPrefix(result, "** 2024-03-21 Thu Profit\n"))
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":DATE: 2024-03-21")
	assert.Contains(t, result, ":PNL: 150.5")
	assert.Contains(t, result, ":CATEGORY: Profit")
	assert.Contains(t, result, ":COLOR: #b6fcb6")
	assert.Contains(t, result, ":END:")
	assert.True(t, strings.HasSuffix(result, "\ngood trend trade\n"))
}

func TestFormatDayOrgLossNoNote(t *testing.T) {
	t.Parallel()

	result := FormatDayOrg(Entry{Key: "2024-03-22", Record: Record{PnL: -40}})

	assert.Contains(t, result, "** 2024-03-22 Fri Loss")
	assert.Contains(t, result, ":PNL: -40")
	assert.True(t, strings.HasSuffix(result, ":END:\n"))
}

func TestFormatDaysOrg(t *testing.T) {
	t.Parallel()

	result := FormatDaysOrg([]Entry{
		{Key: "2024-03-21", Record: Record{PnL: 1}},
		{Key: "2024-03-25", Record: Record{PnL: 0}},
	})

	assert.Equal(t, 2, strings.Count(result, ":PROPERTIES:"))
	assert.Contains(t, result, "** 2024-03-25 Mon No Trade")
	assert.Contains(t, result, ":END:\n\n** 2024-03-25")
}
