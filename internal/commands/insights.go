package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rcampos/grana/internal/currencyutils"
	"rcampos/grana/internal/insights"

	"github.com/shopspring/decimal"
)

func newInsightsCommand() *cobra.Command {
	var periods []string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate an AI analysis of the selected periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := periods
			if len(keys) == 0 {
				keys = app.Settings().SelectedPeriods
			}

			txs := app.Repository().Active(keys)
			if len(txs) == 0 {
				return fmt.Errorf("no transactions in periods %v", keys)
			}

			cfg := app.Config()
			analyzer, err := insights.NewAnalyzer(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model)
			if err != nil {
				return err
			}
			defer analyzer.Close()

			result, err := analyzer.Analyze(cmd.Context(), txs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Resumo: %s\n", result.Summary)

			if len(result.TopCategories) > 0 {
				fmt.Fprintln(out, "\nMaiores gastos:")
				for _, c := range result.TopCategories {
					total := decimal.NewFromFloat(c.Total)
					fmt.Fprintf(out, "  %-20s %s\n", c.Category, currencyutils.FormatAmount(total))
				}
			}
			if len(result.SavingTips) > 0 {
				fmt.Fprintln(out, "\nDicas de economia:")
				for _, tip := range result.SavingTips {
					fmt.Fprintf(out, "  - %s\n", tip)
				}
			}
			if len(result.Anomalies) > 0 {
				fmt.Fprintln(out, "\nPossíveis anomalias:")
				for _, a := range result.Anomalies {
					fmt.Fprintf(out, "  - %s\n", a)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&periods, "periods", "p", nil, "Period keys (YYYY-MM), default: selected periods")
	return cmd
}
