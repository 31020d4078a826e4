package cmd

import (
	"github.com/sccity/dispatch-etl/actions"
	"github.com/spf13/cobra"
)

var dailyCfg = actions.DailyConfig{}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Extract yesterday's records for every entity",
	Long: `Extract yesterday's CAD calls, incidents, radio logs, citations, message
logs, AVL positions and system logs into the warehouse. Intended to run from
cron shortly after midnight. A run always completes; dropped rows are reported
in the summary and recovered by re-running the date with the history command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dailyCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunDaily(&dailyCfg)
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
	dailyCmd.SilenceUsage = true
	dailyCmd.Flags().StringVar(&dailyCfg.LogLevel, "log-level", "", "Override the configured log level")
}
