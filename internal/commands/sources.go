package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rcampos/grana/internal/models"
)

func newSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage per-period source links",
	}
	cmd.AddCommand(newSourcesListCommand())
	cmd.AddCommand(newSourcesSetCommand())
	return cmd
}

func newSourcesListCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured source links of a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := period
			if p == "" {
				selected := app.Settings().SelectedPeriods
				if len(selected) == 0 {
					return fmt.Errorf("no period selected")
				}
				p = selected[0]
			}

			sources := app.Settings().SourceURLs(p)
			if len(sources) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No sources configured for %s\n", p)
				return nil
			}
			for _, src := range sources {
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s\n", src.Origin, src.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "", "Period key (YYYY-MM), default: first selected period")
	return cmd
}

func newSourcesSetCommand() *cobra.Command {
	var (
		period    string
		originKey string
		url       string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or clear the source link of one origin for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := models.ParseOrigin(originKey)
			if err != nil {
				return err
			}

			if err := app.Settings().SetSourceURL(period, origin, url); err != nil {
				return err
			}
			Log.WithFields(map[string]interface{}{
				"period": period,
				"origin": origin,
			}).Info("Source link updated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "", "Period key (YYYY-MM, required)")
	cmd.Flags().StringVarP(&originKey, "origin", "s", "", "Origin key (required)")
	cmd.Flags().StringVarP(&url, "url", "u", "", "Spreadsheet export URL; empty clears the link")
	_ = cmd.MarkFlagRequired("period")
	_ = cmd.MarkFlagRequired("origin")
	return cmd
}
