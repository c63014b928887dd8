package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradecal/journal"
	"github.com/rustyeddy/tradecal/session"
)

func newEditCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [YYYY-MM-DD|today]",
		Short: "Edit days interactively",
		Long: `Open an interactive form on a day (today by default). Type help for
the list of commands; Ctrl-D quits. Changes are only written on save.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ro.open()
			if err != nil {
				return err
			}
			defer a.Close()

			day := time.Now().In(a.loc)
			if len(args) == 1 {
				if day, err = a.parseDay(args[0]); err != nil {
					return err
				}
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "tradecal> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "quit",
				Stdin:           io.NopCloser(cmd.InOrStdin()),
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("readline: %w", err)
			}
			defer rl.Close()

			in := session.NewInterpreter(session.New(a.journal, day, a.log), a.loc)
			out, _ := in.Exec("show")
			fmt.Fprintln(rl.Stdout(), out)

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					if line == "" {
						return nil
					}
					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				switch strings.TrimSpace(line) {
				case "quit", "exit":
					return nil
				}

				out, err := in.Exec(line)
				if out != "" {
					fmt.Fprintln(rl.Stdout(), out)
				}
				var perr *journal.PersistError
				if errors.As(err, &perr) {
					fmt.Fprintf(rl.Stderr(), "warning: not written to the store: %v\n", perr.Err)
				} else if err != nil {
					fmt.Fprintln(rl.Stderr(), "error:", err)
				}
			}
		},
	}
}
