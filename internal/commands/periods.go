package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPeriodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Show or change the selected periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(app.Settings().SelectedPeriods, ", "))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <YYYY-MM> [YYYY-MM...]",
		Short: "Replace the selected period list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings().SelectPeriods(args); err != nil {
				return err
			}
			Log.WithField("periods", args).Info("Selected periods updated")
			return nil
		},
	})

	return cmd
}
