package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "2.0.0"
	buildDate        = "2023-05-01T00:00+0000"
	stackDumpOnPanic bool
)

var rootCmd = &cobra.Command{
	Use: "dispatch-etl",
	Long: `
________  .__                         __         .__          ___________________.____
\______ \ |__| ____________  _______ /  |_  ____ |  |__       \_   _____/\__    _/|    |
 |    |  \|  |/  ___/\____ \ \__  \ \   __\/ ___\|  |  \       |    __)_   |    |  |    |
 |    '   \  |\___ \ |  |_> > / __ \_|  | \  \___|   Y  \      |        \  |    |  |    |___
/_______  /__/____  >|   __/ (____  /|__|  \___  >___|  /     /_______  /  |____|  |_______ \
        \/        \/ |__|         \/           \/     \/              \/                   \/

Dispatch-ETL pulls public-safety dispatch records from the Spillman Flex query
endpoint into a reporting warehouse: CAD calls, law/fire/EMS incidents, radio
logs, citations, message logs, AVL positions, system logs and geobase
addresses. Run it daily from cron, replay history for a date range, or refresh
the datamart rollups and agency views.`,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Execute() prints the error.
		os.Exit(1)
	}
}
