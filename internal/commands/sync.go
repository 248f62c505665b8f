package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	var periodsFlag string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch remote spreadsheet exports for the selected periods",
		Long: `Fetch every configured source link of the selected periods, parse the
CSV content and replace each period's cached transactions. A failing
source contributes nothing and does not stop the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			periods := app.Settings().SelectedPeriods
			if periodsFlag != "" {
				periods = strings.Split(periodsFlag, ",")
			}

			Log.WithField("periods", periods).Info("Starting sync pass")
			if err := app.Syncer().SyncPeriods(cmd.Context(), periods, app.Settings()); err != nil {
				return err
			}
			Log.Info("Sync completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodsFlag, "periods", "p", "", "Comma-separated period keys (YYYY-MM), default: selected periods")
	return cmd
}
