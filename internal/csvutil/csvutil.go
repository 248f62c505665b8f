// Package csvutil writes the canonical transaction CSV consumed by
// spreadsheets and other tooling.
package csvutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"rcampos/grana/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// exportRow is the flat CSV shape of a transaction. Amounts keep their
// sign so the file round-trips through the fixed-position parser.
type exportRow struct {
	Date        string `csv:"Date"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
	Origin      string `csv:"Origin"`
	Type        string `csv:"Type"`
	ID          string `csv:"ID"`
}

// WriteTransactions writes transactions to csvFile in the canonical
// format, creating parent directories as needed.
func WriteTransactions(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]exportRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, exportRow{
			Date:        tx.Date,
			Amount:      tx.Amount.StringFixed(2),
			Description: tx.Description,
			Category:    tx.Category,
			Origin:      string(tx.Origin),
			Type:        string(tx.Type),
			ID:          tx.ID,
		})
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
