package cmd

import (
	"github.com/sccity/dispatch-etl/actions"
	"github.com/spf13/cobra"
)

var createAgencyCfg = actions.CreateAgencyConfig{}

var createAgencyCmd = &cobra.Command{
	Use:   "createagency",
	Short: "Provision an agency-scoped schema of warehouse views",
	Long: `Drop and recreate a per-agency schema containing views over the shared
warehouse tables, each filtered to the agency. Law agencies additionally get a
citations view. DDL only; no extraction is performed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		createAgencyCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunCreateAgency(&createAgencyCfg)
	},
}

func init() {
	rootCmd.AddCommand(createAgencyCmd)
	createAgencyCmd.SilenceUsage = true
	createAgencyCmd.Flags().SortFlags = false
	createAgencyCmd.Flags().StringVar(&createAgencyCfg.Agency, "agency", "", "Agency abbreviation, e.g. scpd (required)")
	createAgencyCmd.Flags().StringVar(&createAgencyCfg.Type, "type", "", "Agency type: law, fire or ems (required)")
	createAgencyCmd.Flags().StringVar(&createAgencyCfg.LogLevel, "log-level", "", "Override the configured log level")
	_ = createAgencyCmd.MarkFlagRequired("agency")
	_ = createAgencyCmd.MarkFlagRequired("type")
}
