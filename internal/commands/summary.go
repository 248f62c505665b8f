package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rcampos/grana/internal/aggregate"
	"rcampos/grana/internal/currencyutils"
)

func newSummaryCommand() *cobra.Command {
	var periodsFlag string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense and breakdown statistics",
		Long: `Aggregate the active (non-ignored) transactions of the selected periods
into consolidated totals, channel splits and expense breakdowns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			periods := app.Settings().SelectedPeriods
			if periodsFlag != "" {
				periods = strings.Split(periodsFlag, ",")
			}

			active := app.Repository().Active(periods)
			s := aggregate.Compute(active)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Período: %s (%d lançamentos)\n\n", strings.Join(periods, ", "), len(active))
			fmt.Fprintf(out, "Entradas: %s  (Pix %s, Crédito %s)\n",
				currencyutils.FormatAmount(s.Income),
				currencyutils.FormatAmount(s.Transfer.Income),
				currencyutils.FormatAmount(s.Credit.Income))
			fmt.Fprintf(out, "Saídas:   %s  (Pix %s, Crédito %s)\n",
				currencyutils.FormatAmount(s.Expense),
				currencyutils.FormatAmount(s.Transfer.Expense),
				currencyutils.FormatAmount(s.Credit.Expense))
			fmt.Fprintf(out, "Saldo:    %s\n", currencyutils.FormatAmount(s.Balance))

			if len(s.BySource) > 0 {
				fmt.Fprintf(out, "\nGastos por fonte:\n")
				for _, entry := range s.BySource {
					fmt.Fprintf(out, "  %-20s %12s  %3.0f%%\n",
						entry.Label, currencyutils.FormatAmount(entry.Amount), entry.Percent)
				}
			}
			if len(s.ByCategory) > 0 {
				fmt.Fprintf(out, "\nGastos por categoria:\n")
				for _, entry := range s.ByCategory {
					fmt.Fprintf(out, "  %-20s %12s  %3.0f%%\n",
						entry.Label, currencyutils.FormatAmount(entry.Amount), entry.Percent)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodsFlag, "periods", "p", "", "Comma-separated period keys (YYYY-MM), default: selected periods")
	return cmd
}
