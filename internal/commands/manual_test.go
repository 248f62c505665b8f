package commands

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcampos/grana/internal/models"
)

func TestBuildManualTransaction(t *testing.T) {
	tx, err := buildManualTransaction("2024-03-15", "Feira", "80,00", "expense", "Dinheiro", "Alimentação")
	require.NoError(t, err)

	assert.Equal(t, "15/03/2024", tx.Date, "ISO input is converted to display form")
	assert.True(t, decimal.NewFromInt(-80).Equal(tx.Amount), "expense forces a negative sign")
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, models.OriginManual, tx.Origin)
	assert.Equal(t, "Dinheiro", tx.ManualLabel)
}

func TestBuildManualTransactionDisplayDate(t *testing.T) {
	tx, err := buildManualTransaction("15/03/2024", "Venda", "120", "income", "Pix Manual", "Renda")
	require.NoError(t, err)

	assert.Equal(t, "15/03/2024", tx.Date)
	assert.True(t, decimal.NewFromInt(120).Equal(tx.Amount))
	assert.Equal(t, models.TypeIncome, tx.Type)
}

func TestBuildManualTransactionNegativeInputNormalized(t *testing.T) {
	tx, err := buildManualTransaction("15/03/2024", "Venda", "-120", "income", "", "Renda")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(120).Equal(tx.Amount), "the declared type owns the sign")
}

func TestBuildManualTransactionValidation(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		desc   string
		amount string
		txType string
	}{
		{"Bad date", "15-03", "Feira", "80", "expense"},
		{"Empty description", "15/03/2024", "  ", "80", "expense"},
		{"Unparseable amount", "15/03/2024", "Feira", "oitenta", "expense"},
		{"Zero amount", "15/03/2024", "Feira", "0,00", "expense"},
		{"Unknown type", "15/03/2024", "Feira", "80", "transferencia"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildManualTransaction(tc.date, tc.desc, tc.amount, tc.txType, "", "Geral")
			assert.Error(t, err)
		})
	}
}
