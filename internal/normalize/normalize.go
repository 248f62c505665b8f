// Package normalize applies per-origin business rules to parsed rows,
// producing canonical transaction records.
package normalize

import (
	"strings"

	"github.com/sirupsen/logrus"

	"rcampos/grana/internal/csvparse"
	"rcampos/grana/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rows converts parsed field tuples from one origin into canonical
// transactions. The origin's rule table drives sign flipping and
// exclusion filters; the transaction type follows the final sign.
// Zero-amount rows are dropped so the sign/type invariant always holds.
func Rows(rows []csvparse.Row, origin models.Origin) []models.Transaction {
	rule := origin.Rule()

	var txs []models.Transaction
	for _, row := range rows {
		if dropByDescription(row.Description, rule.DropDescriptions) {
			log.WithFields(logrus.Fields{
				"origin":      origin,
				"description": row.Description,
			}).Debug("Dropping excluded row")
			continue
		}

		amount := row.Amount
		if rule.NegateAmounts {
			amount = amount.Neg()
		}
		if amount.IsZero() {
			continue
		}

		txs = append(txs, models.Transaction{
			ID:          TransactionID(origin, row.Date, row.Description, amount.String(), row.Ordinal),
			Date:        row.Date,
			Description: row.Description,
			Amount:      amount,
			Category:    row.Category,
			Type:        models.TypeForAmount(amount),
			Origin:      origin,
		})
	}

	log.WithFields(logrus.Fields{
		"origin": origin,
		"count":  len(txs),
	}).Debug("Normalized rows")
	return txs
}

// dropByDescription reports whether the description matches one of the
// rule's excluded substrings, case-insensitively.
func dropByDescription(description string, excluded []string) bool {
	if len(excluded) == 0 {
		return false
	}
	lower := strings.ToLower(description)
	for _, pattern := range excluded {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
