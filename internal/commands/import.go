package commands

import (
	"github.com/spf13/cobra"

	"rcampos/grana/internal/models"
)

func newImportCommand() *cobra.Command {
	var (
		inputFile string
		originKey string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a local CSV export file",
		Long: `Import transactions from a local CSV file. Column roles are discovered
from header labels when present; otherwise column A is the date, B the
amount and C the description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := models.ParseOrigin(originKey)
			if err != nil {
				return err
			}

			count, err := app.Importer().ImportFile(inputFile, origin)
			if err != nil {
				return err
			}
			Log.WithField("count", count).Info("Import completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (required)")
	cmd.Flags().StringVarP(&originKey, "origin", "s", string(models.OriginNubankPFPix), "Origin key for the imported rows")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
