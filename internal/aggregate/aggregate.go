// Package aggregate computes derived statistics over a transaction set.
// It never mutates its input; callers pass the already ignore-filtered
// active set.
package aggregate

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rcampos/grana/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ChannelTotals carries the income/expense/balance triple for one
// payment channel. Expense is an absolute value.
type ChannelTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// LabelAmount is one entry of an expense breakdown, with its share of
// the total expense. Percent is 0 when total expenses are 0.
type LabelAmount struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Percent float64         `json:"percent"`
}

// Summary is the full set of dashboard statistics for one active set.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`

	Transfer ChannelTotals `json:"transfer"`
	Credit   ChannelTotals `json:"credit"`

	BySource   []LabelAmount `json:"bySource"`
	ByCategory []LabelAmount `json:"byCategory"`
}

// Compute derives totals, channel splits and expense breakdowns from the
// given transactions. Income is not broken down; breakdowns are over
// absolute expense magnitude, sorted descending by amount.
func Compute(txs []models.Transaction) Summary {
	var s Summary
	s.Income = decimal.Zero
	s.Expense = decimal.Zero
	s.Transfer = zeroChannel()
	s.Credit = zeroChannel()

	bySource := make(map[string]decimal.Decimal)
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		channel := channelOf(tx)

		if tx.IsIncome() {
			s.Income = s.Income.Add(tx.Amount)
			switch channel {
			case models.ChannelTransfer:
				s.Transfer.Income = s.Transfer.Income.Add(tx.Amount)
			case models.ChannelCredit:
				s.Credit.Income = s.Credit.Income.Add(tx.Amount)
			}
			continue
		}

		abs := tx.Amount.Abs()
		s.Expense = s.Expense.Add(abs)
		switch channel {
		case models.ChannelTransfer:
			s.Transfer.Expense = s.Transfer.Expense.Add(abs)
		case models.ChannelCredit:
			s.Credit.Expense = s.Credit.Expense.Add(abs)
		}

		label := tx.DisplayLabel()
		bySource[label] = bySource[label].Add(abs)
		byCategory[tx.Category] = byCategory[tx.Category].Add(abs)
	}

	s.Balance = s.Income.Sub(s.Expense)
	s.Transfer.Balance = s.Transfer.Income.Sub(s.Transfer.Expense)
	s.Credit.Balance = s.Credit.Income.Sub(s.Credit.Expense)

	s.BySource = rank(bySource, s.Expense)
	s.ByCategory = rank(byCategory, s.Expense)
	return s
}

func zeroChannel() ChannelTotals {
	return ChannelTotals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
}

// channelOf classifies a transaction for the channel split. Origins carry
// their channel in the rule table; a manual entry counts as a transfer
// when its sub-label names a pix-style channel.
func channelOf(tx models.Transaction) models.Channel {
	if tx.Origin == models.OriginManual &&
		strings.Contains(strings.ToLower(tx.ManualLabel), "pix") {
		return models.ChannelTransfer
	}
	return tx.Origin.Rule().Channel
}

// rank turns an expense map into a breakdown sorted descending by
// amount, with ties broken by label for stable output. Shares divide by
// total; a zero total yields zero percentages, never NaN.
func rank(amounts map[string]decimal.Decimal, total decimal.Decimal) []LabelAmount {
	entries := make([]LabelAmount, 0, len(amounts))
	for label, amount := range amounts {
		entry := LabelAmount{Label: label, Amount: amount}
		if total.IsPositive() {
			entry.Percent, _ = amount.Div(total).Mul(hundred).Float64()
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
