package cmd

import (
	"github.com/sccity/dispatch-etl/actions"
	"github.com/spf13/cobra"
)

var ddmCfg = actions.DatamartConfig{}

var ddmCmd = &cobra.Command{
	Use:   "ddm",
	Short: "Refresh the datamart rollup tables",
	Long: `Run the stored procedures that rebuild the incident/radiolog datamart
rollups (three years down to one month). Intended to run daily after the
extract.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ddmCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunDatamart(&ddmCfg)
	},
}

func init() {
	rootCmd.AddCommand(ddmCmd)
	ddmCmd.SilenceUsage = true
	ddmCmd.Flags().StringVar(&ddmCfg.LogLevel, "log-level", "", "Override the configured log level")
}
