// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DefaultCategory is the bucket used when source data carries no category.
const DefaultCategory = "Geral"

// Transaction is the canonical record produced by the ingestion pipeline.
// Records are immutable once created; an edit replaces the whole value.
//
// The sign of Amount and Type always agree: income is positive,
// expense is negative. Amount is never zero.
type Transaction struct {
	ID          string          `json:"id" csv:"ID"`
	Date        string          `json:"date" csv:"Date"` // DD/MM/YYYY display format
	Description string          `json:"description" csv:"Description"`
	Amount      decimal.Decimal `json:"amount" csv:"Amount"`
	Category    string          `json:"category" csv:"Category"`
	Type        TransactionType `json:"type" csv:"Type"`
	Origin      Origin          `json:"origin" csv:"Origin"`
	// ManualLabel is a free-text sub-label ("Dinheiro", "Pix Manual", ...)
	// set only when Origin == OriginManual.
	ManualLabel string `json:"manualLabel,omitempty" csv:"ManualLabel"`
}

// TypeForAmount derives the transaction type from the sign of an amount.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.Sign() >= 0 {
		return TypeIncome
	}
	return TypeExpense
}

// IsIncome returns true if the transaction brings money in.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if the transaction takes money out.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// DisplayLabel returns the label used to group the transaction on the
// by-source breakdown. Manual entries group by their sub-label when set.
func (t Transaction) DisplayLabel() string {
	if t.Origin == OriginManual && t.ManualLabel != "" {
		return t.ManualLabel
	}
	return t.Origin.DisplayName()
}
