package cmd

import (
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags. Empty values fall back to the
// config file, then to config.Default.
type rootOptions struct {
	ConfigPath string
	StoreType  string
	StorePath  string
	LogLevel   string
}

func NewRootCmd() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tradecal",
		Short: "A daily trading P&L calendar",
		Long: `Tradecal is a personal trading journal kept one calendar day at a time.

For every day you record a profit/loss amount and a note; the month view
marks each day as profit, loss or no trade.

Examples:
  tradecal set 2024-03-21 --pnl 150.5 --note "good trend trade"
  tradecal month 2024-03
  tradecal show 2024-03-21
  tradecal edit`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&ro.ConfigPath, "config", "", "path to config file (optional)")
	cmd.PersistentFlags().StringVar(&ro.StoreType, "store", "", "store backend: memory|file|sqlite|redis")
	cmd.PersistentFlags().StringVar(&ro.StorePath, "path", "", "store directory (file) or database (sqlite)")
	cmd.PersistentFlags().StringVar(&ro.LogLevel, "log-level", "", "log level: debug|info|warn|error")

	cmd.AddCommand(
		newSetCmd(ro),
		newShowCmd(ro),
		newMonthCmd(ro),
		newEditCmd(ro),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
