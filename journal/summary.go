package journal

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradecal/pnl"
)

// Summary aggregates a run of saved days.
type Summary struct {
	Days        int
	ProfitDays  int
	LossDays    int
	NoTradeDays int

	GrossProfit decimal.Decimal
	GrossLoss   decimal.Decimal // absolute value
	Net         decimal.Decimal
}

// Summarize totals entries by category.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		v := decimal.NewFromFloat(e.PnL)
		s.Days++
		s.Net = s.Net.Add(v)

		switch pnl.Classify(e.PnL) {
		case pnl.Profit:
			s.ProfitDays++
			s.GrossProfit = s.GrossProfit.Add(v)
		case pnl.Loss:
			s.LossDays++
			s.GrossLoss = s.GrossLoss.Add(v.Abs())
		default:
			s.NoTradeDays++
		}
	}
	return s
}

// ProfitFactor is gross profit over gross loss. ok is false when there
// were no losing days.
func (s Summary) ProfitFactor() (pf decimal.Decimal, ok bool) {
	if s.GrossLoss.IsZero() {
		return decimal.Zero, false
	}
	return s.GrossProfit.DivRound(s.GrossLoss, 4), true
}
