package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcampos/grana/internal/models"
)

func tx(date, desc string, amount float64, category string, origin models.Origin) models.Transaction {
	amt := decimal.NewFromFloat(amount)
	return models.Transaction{
		ID:          desc,
		Date:        date,
		Description: desc,
		Amount:      amt,
		Category:    category,
		Type:        models.TypeForAmount(amt),
		Origin:      origin,
	}
}

func TestComputeTotals(t *testing.T) {
	txs := []models.Transaction{
		tx("01/03/2024", "Salário", 1000, "Renda", models.OriginNubankPFPix),
		tx("02/03/2024", "Mercado", -400, "Alimentação", models.OriginNubankPFPix),
	}

	s := Compute(txs)

	assert.True(t, decimal.NewFromInt(1000).Equal(s.Income))
	assert.True(t, decimal.NewFromInt(400).Equal(s.Expense), "expense total is an absolute value")
	assert.True(t, decimal.NewFromInt(600).Equal(s.Balance))
}

func TestComputeChannelSplit(t *testing.T) {
	txs := []models.Transaction{
		tx("01/03/2024", "Pix recebido", 500, "Renda", models.OriginPicPayPFPix),
		tx("02/03/2024", "Mercado", -100, "Alimentação", models.OriginNubankPFPix),
		tx("03/03/2024", "Restaurante", -80, "Alimentação", models.OriginNubankCC),
	}

	s := Compute(txs)

	assert.True(t, decimal.NewFromInt(500).Equal(s.Transfer.Income))
	assert.True(t, decimal.NewFromInt(100).Equal(s.Transfer.Expense))
	assert.True(t, decimal.NewFromInt(400).Equal(s.Transfer.Balance))

	assert.True(t, s.Credit.Income.IsZero())
	assert.True(t, decimal.NewFromInt(80).Equal(s.Credit.Expense))
	assert.True(t, decimal.NewFromInt(-80).Equal(s.Credit.Balance))
}

func TestComputeManualPixLabelCountsAsTransfer(t *testing.T) {
	manual := tx("01/03/2024", "Transferência", -50, "Geral", models.OriginManual)
	manual.ManualLabel = "Pix Manual"

	cash := tx("02/03/2024", "Feira", -30, "Geral", models.OriginManual)
	cash.ManualLabel = "Dinheiro"

	s := Compute([]models.Transaction{manual, cash})

	assert.True(t, decimal.NewFromInt(50).Equal(s.Transfer.Expense))
	assert.True(t, decimal.NewFromInt(80).Equal(s.Expense))
}

func TestComputeBreakdowns(t *testing.T) {
	txs := []models.Transaction{
		tx("01/03/2024", "Mercado", -300, "Alimentação", models.OriginNubankPFPix),
		tx("02/03/2024", "Uber", -100, "Transporte", models.OriginNubankCC),
		tx("03/03/2024", "Salário", 1000, "Renda", models.OriginNubankPFPix),
	}

	s := Compute(txs)

	require.Len(t, s.ByCategory, 2, "income never enters the breakdowns")
	assert.Equal(t, "Alimentação", s.ByCategory[0].Label)
	assert.InDelta(t, 75.0, s.ByCategory[0].Percent, 0.001)
	assert.Equal(t, "Transporte", s.ByCategory[1].Label)
	assert.InDelta(t, 25.0, s.ByCategory[1].Percent, 0.001)

	require.Len(t, s.BySource, 2)
	assert.Equal(t, "Nubank PF", s.BySource[0].Label)
	assert.Equal(t, "Nubank Cartão", s.BySource[1].Label)

	sum := 0.0
	for _, e := range s.ByCategory {
		sum += e.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestComputeManualLabelGroupsBySource(t *testing.T) {
	labeled := tx("01/03/2024", "Feira", -30, "Geral", models.OriginManual)
	labeled.ManualLabel = "Dinheiro"

	s := Compute([]models.Transaction{labeled})

	require.Len(t, s.BySource, 1)
	assert.Equal(t, "Dinheiro", s.BySource[0].Label)
}

func TestComputeZeroExpense(t *testing.T) {
	s := Compute([]models.Transaction{
		tx("01/03/2024", "Salário", 1000, "Renda", models.OriginNubankPFPix),
	})

	assert.True(t, s.Expense.IsZero())
	assert.Empty(t, s.ByCategory)
	assert.Empty(t, s.BySource)
}

func TestComputeEmptyInput(t *testing.T) {
	s := Compute(nil)

	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expense.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.BySource)
}

func TestComputeTieBreaksByLabel(t *testing.T) {
	txs := []models.Transaction{
		tx("01/03/2024", "B", -50, "Beta", models.OriginNubankPFPix),
		tx("02/03/2024", "A", -50, "Alfa", models.OriginNubankPFPix),
	}

	s := Compute(txs)

	require.Len(t, s.ByCategory, 2)
	assert.Equal(t, "Alfa", s.ByCategory[0].Label)
	assert.Equal(t, "Beta", s.ByCategory[1].Label)
}
