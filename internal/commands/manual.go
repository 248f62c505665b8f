package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rcampos/grana/internal/currencyutils"
	"rcampos/grana/internal/dateutils"
	"rcampos/grana/internal/models"
	"rcampos/grana/internal/normalize"
)

func newManualCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Add or edit manually entered transactions",
	}
	cmd.AddCommand(newManualAddCommand())
	cmd.AddCommand(newManualEditCommand())
	return cmd
}

func newManualAddCommand() *cobra.Command {
	var (
		date     string
		desc     string
		amount   string
		txType   string
		label    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := buildManualTransaction(date, desc, amount, txType, label, category)
			if err != nil {
				return err
			}
			tx.ID = normalize.ManualID(time.Now())

			if err := app.Repository().UpsertManual(tx); err != nil {
				return err
			}
			Log.WithField("id", tx.ID).Info("Manual transaction added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD or DD/MM/YYYY, required)")
	cmd.Flags().StringVarP(&desc, "description", "m", "", "Description (required)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount, always positive (required)")
	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Transaction type: income or expense")
	cmd.Flags().StringVarP(&label, "label", "l", "Dinheiro", "Source sub-label (Dinheiro, Pix Manual, Transferência, Outros)")
	cmd.Flags().StringVarP(&category, "category", "c", "Manual", "Category label")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newManualEditCommand() *cobra.Command {
	var (
		id       string
		date     string
		desc     string
		amount   string
		txType   string
		label    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an existing manual transaction, keeping its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, ok := app.Repository().FindManual(id)
			if !ok {
				return fmt.Errorf("no manual transaction with id %s", id)
			}

			if date == "" {
				date = existing.Date
			}
			if desc == "" {
				desc = existing.Description
			}
			if amount == "" {
				amount = existing.Amount.Abs().String()
			}
			if txType == "" {
				txType = string(existing.Type)
			}
			if label == "" {
				label = existing.ManualLabel
			}
			if category == "" {
				category = existing.Category
			}

			tx, err := buildManualTransaction(date, desc, amount, txType, label, category)
			if err != nil {
				return err
			}
			tx.ID = existing.ID

			if err := app.Repository().UpsertManual(tx); err != nil {
				return err
			}
			Log.WithField("id", tx.ID).Info("Manual transaction updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Id of the transaction to edit (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "New date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVarP(&desc, "description", "m", "", "New description")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount, always positive")
	cmd.Flags().StringVarP(&txType, "type", "t", "", "New type: income or expense")
	cmd.Flags().StringVarP(&label, "label", "l", "", "New source sub-label")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category label")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// buildManualTransaction validates the flag values and assembles the
// record. The declared type forces the amount sign.
func buildManualTransaction(date, desc, amount, txType, label, category string) (models.Transaction, error) {
	displayDate := date
	if strings.Contains(date, "-") {
		converted, err := dateutils.ISOToDisplay(date)
		if err != nil {
			return models.Transaction{}, err
		}
		displayDate = converted
	}
	if _, err := dateutils.PeriodOf(displayDate); err != nil {
		return models.Transaction{}, err
	}

	if strings.TrimSpace(desc) == "" {
		return models.Transaction{}, fmt.Errorf("description must not be empty")
	}

	value, err := currencyutils.ParseAmount(amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q", amount)
	}
	if value.IsZero() {
		return models.Transaction{}, fmt.Errorf("amount must not be zero")
	}
	value = value.Abs()

	t := models.TransactionType(txType)
	switch t {
	case models.TypeIncome:
	case models.TypeExpense:
		value = value.Neg()
	default:
		return models.Transaction{}, fmt.Errorf("invalid type %q, want income or expense", txType)
	}

	return models.Transaction{
		Date:        displayDate,
		Description: desc,
		Amount:      value,
		Category:    category,
		Type:        t,
		Origin:      models.OriginManual,
		ManualLabel: label,
	}, nil
}
