package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradecal/calendar"
	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/journal"
)

func newMonthCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month with a marker on every saved day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ro.open()
			if err != nil {
				return err
			}
			defer a.Close()

			first := time.Now().In(a.loc)
			if len(args) == 1 {
				first, err = time.ParseInLocation("2006-01", args[0], a.loc)
				if err != nil {
					return fmt.Errorf("invalid month %q want format YYYY-MM: %w", args[0], err)
				}
			}

			days := calendar.New(a.journal).Month(first.Year(), first.Month(), a.loc)
			out := cmd.OutOrStdout()
			if err := calendar.RenderMonth(out, days); err != nil {
				return err
			}

			from := datekey.Normalize(days[0].Date)
			to := datekey.Normalize(days[len(days)-1].Date)
			s := journal.Summarize(a.journal.Records().Between(from, to))

			fmt.Fprintf(out, "\ndays: %d  profit: %d  loss: %d  no trade: %d\n",
				s.Days, s.ProfitDays, s.LossDays, s.NoTradeDays)
			fmt.Fprintf(out, "net: %s  gross profit: %s  gross loss: %s",
				s.Net.String(), s.GrossProfit.String(), s.GrossLoss.String())
			if pf, ok := s.ProfitFactor(); ok {
				fmt.Fprintf(out, "  profit factor: %s", pf.String())
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
