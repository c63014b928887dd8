package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/journal"
)

func newShowCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [YYYY-MM-DD|today ...]",
		Short: "Print saved days as Org-mode entries",
		Long: `Print the given days, or every saved day when none are given.

Examples:
  tradecal show
  tradecal show 2024-03-21 2024-03-22`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ro.open()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			records := a.journal.Records()

			if len(args) == 0 {
				keys := records.Keys()
				if len(keys) == 0 {
					fmt.Fprintln(out, "no saved days")
					return nil
				}
				fmt.Fprint(out, journal.FormatDaysOrg(records.Between(keys[0], keys[len(keys)-1])))
				return nil
			}

			for i, arg := range args {
				day, err := a.parseDay(arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				key := datekey.Normalize(day)
				rec, ok := a.journal.Get(key)
				if !ok {
					fmt.Fprintf(out, "%s: nothing saved\n", key)
					continue
				}
				fmt.Fprint(out, journal.FormatDayOrg(journal.Entry{Key: key, Record: rec}))
			}
			return nil
		},
	}
}
