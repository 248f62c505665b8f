package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"rcampos/grana/internal/csvutil"
)

func newExportCommand() *cobra.Command {
	var (
		output  string
		periods []string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to a CSV file",
		Long:  "Export the combined transactions of the selected periods, including ignored rows unless --active-only is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := periods
			if len(keys) == 0 {
				keys = app.Settings().SelectedPeriods
			}

			txs := app.Repository().Active(keys)
			if all {
				txs = app.Repository().Combined(keys)
			}

			if err := csvutil.WriteTransactions(txs, output); err != nil {
				return err
			}
			Log.WithFields(map[string]interface{}{
				"file":    output,
				"count":   len(txs),
				"periods": strings.Join(keys, ","),
			}).Info("Transactions exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	cmd.Flags().StringSliceVarP(&periods, "periods", "p", nil, "Period keys (YYYY-MM), default: selected periods")
	cmd.Flags().BoolVar(&all, "include-ignored", false, "Also export ignored transactions")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
