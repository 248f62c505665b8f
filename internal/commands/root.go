// Package commands contains the grana CLI commands.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rcampos/grana/internal/config"
	"rcampos/grana/internal/container"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	app *container.Container
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grana",
		Short: "Personal finance dashboard for Brazilian bank and wallet CSV exports.",
		Long: `grana syncs spreadsheet exports from your banks and wallets (Nubank,
PicPay), normalizes them into one transaction model and aggregates the
result into monthly income/expense summaries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}

			Log = config.ConfigureLoggingFromConfig(cfg)
			app, err = container.NewContainer(cfg, Log)
			return err
		},
	}

	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newManualCommand())
	rootCmd.AddCommand(newIgnoreCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newPeriodsCommand())
	rootCmd.AddCommand(newSourcesCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newInsightsCommand())

	return rootCmd
}
