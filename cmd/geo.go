package cmd

import (
	"github.com/sccity/dispatch-etl/actions"
	"github.com/spf13/cobra"
)

var geoCfg = actions.GeobaseConfig{}

var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Re-extract the full geobase address table",
	Long: `Sweep the whole geobase address id space in fixed-size buckets and
reconcile each address against the warehouse, converging every row toward the
remote system's current state field by field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		geoCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunGeobase(&geoCfg)
	},
}

func init() {
	rootCmd.AddCommand(geoCmd)
	geoCmd.SilenceUsage = true
	geoCmd.Flags().IntVar(&geoCfg.MaxID, "max-id", 0, "Upper bound of the address id sweep (default 300000)")
	geoCmd.Flags().StringVar(&geoCfg.LogLevel, "log-level", "", "Override the configured log level")
}
