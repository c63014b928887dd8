package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradecal/journal"
	"github.com/rustyeddy/tradecal/session"
)

func newSetCmd(ro *rootOptions) *cobra.Command {
	var pnlText, note string

	cmd := &cobra.Command{
		Use:   "set <YYYY-MM-DD|today>",
		Short: "Save the P&L and note for a day",
		Long: `Save a day's result. Fields not given keep their saved value, so
"set 2024-03-21 --note ..." only changes the note.

A P&L that is empty or not a number is saved as 0 (No Trade).

Examples:
  tradecal set today --pnl -40
  tradecal set 2024-03-21 --pnl 150.5 --note "good trend trade"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ro.open()
			if err != nil {
				return err
			}
			defer a.Close()

			day, err := a.parseDay(args[0])
			if err != nil {
				return err
			}

			s := session.New(a.journal, day, a.log)
			if cmd.Flags().Changed("pnl") {
				s.UpdatePnlInput(pnlText)
			}
			if cmd.Flags().Changed("note") {
				s.UpdateNoteInput(note)
			}

			key, rec, err := s.Commit()
			var perr *journal.PersistError
			if errors.As(err, &perr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s was not written to the store: %v\n", key, perr.Err)
			} else if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), journal.FormatDayOrg(journal.Entry{Key: key, Record: rec}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pnlText, "pnl", "p", "", "profit (positive) or loss (negative) for the day")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	return cmd
}
