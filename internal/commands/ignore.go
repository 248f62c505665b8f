package commands

import (
	"github.com/spf13/cobra"
)

func newIgnoreCommand() *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "ignore <transaction-id>",
		Short: "Exclude a transaction from totals without deleting it",
		Long: `Mark a transaction as ignored so it is excluded from summaries while
staying visible in listings. Use --restore to bring it back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := app.Repository().SetIgnored(id, !restore); err != nil {
				return err
			}

			if restore {
				Log.WithField("id", id).Info("Transaction restored")
			} else {
				Log.WithField("id", id).Info("Transaction ignored")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&restore, "restore", "r", false, "Remove the id from the ignore set instead")
	return cmd
}
