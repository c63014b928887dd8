// Package pnl classifies a day's profit or loss for display.
package pnl

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the display class of a saved day. A day with no record has
// no Category at all.
type Category int

const (
	NoTrade Category = iota
	Profit
	Loss
)

// Display colors for each category.
const (
	ColorProfit  = "#b6fcb6"
	ColorLoss    = "#ffb3b3"
	ColorNoTrade = "#b3d1ff"
)

// Classify maps a P&L amount to its category. v must be a number.
func Classify(v float64) Category {
	switch {
	case v > 0:
		return Profit
	case v < 0:
		return Loss
	default:
		return NoTrade
	}
}

func (c Category) String() string {
	switch c {
	case Profit:
		return "Profit"
	case Loss:
		return "Loss"
	default:
		return "No Trade"
	}
}

// Color returns the marker color for c.
func (c Category) Color() string {
	switch c {
	case Profit:
		return ColorProfit
	case Loss:
		return ColorLoss
	default:
		return ColorNoTrade
	}
}

// ParseInput converts the raw text of the P&L field to a number. Empty or
// non-numeric text, and amounts too large for a float64, yield 0 and
// ok == false; callers decide whether that is an error.
func ParseInput(text string) (v float64, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, false
	}
	v = d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FormatInput renders v the way it is shown back in the P&L field.
func FormatInput(v float64) string {
	return decimal.NewFromFloat(v).String()
}
