package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcampos/grana/internal/csvparse"
	"rcampos/grana/internal/models"
)

func row(date, desc string, amount float64, ordinal int) csvparse.Row {
	return csvparse.Row{
		Date:        date,
		Amount:      decimal.NewFromFloat(amount),
		Description: desc,
		Category:    "Geral",
		Ordinal:     ordinal,
	}
}

func TestRowsPixOrigin(t *testing.T) {
	rows := []csvparse.Row{
		row("01/03/2024", "Salário", 1000, 0),
		row("02/03/2024", "Mercado", -50, 1),
	}

	txs := Rows(rows, models.OriginNubankPFPix)

	assert.Len(t, txs, 2)
	assert.Equal(t, models.TypeIncome, txs[0].Type)
	assert.True(t, decimal.NewFromInt(1000).Equal(txs[0].Amount))
	assert.Equal(t, models.TypeExpense, txs[1].Type)
	assert.Equal(t, models.OriginNubankPFPix, txs[1].Origin)
}

func TestRowsCreditCardNegation(t *testing.T) {
	rows := []csvparse.Row{
		row("05/03/2024", "Restaurante", 120.50, 0),
	}

	txs := Rows(rows, models.OriginNubankCC)

	assert.Len(t, txs, 1)
	assert.True(t, decimal.NewFromFloat(-120.50).Equal(txs[0].Amount), "card charges become expenses")
	assert.Equal(t, models.TypeExpense, txs[0].Type)
}

func TestRowsCreditCardDropsBillPayment(t *testing.T) {
	rows := []csvparse.Row{
		row("05/03/2024", "Pagamento recebido", 500, 0),
		row("05/03/2024", "PAGAMENTO RECEBIDO - fatura", 200, 1),
		row("06/03/2024", "Restaurante", 80, 2),
	}

	txs := Rows(rows, models.OriginNubankCC)

	assert.Len(t, txs, 1)
	assert.Equal(t, "Restaurante", txs[0].Description)
}

func TestRowsSkipsZeroAmounts(t *testing.T) {
	rows := []csvparse.Row{
		row("05/03/2024", "Estorno", 0, 0),
		row("06/03/2024", "Mercado", -30, 1),
	}

	txs := Rows(rows, models.OriginPicPayPFPix)

	assert.Len(t, txs, 1)
	assert.Equal(t, "Mercado", txs[0].Description)
}

func TestIngestionIdempotence(t *testing.T) {
	text := "01/03/2024,1000.00,Salário\n01/03/2024,-8.00,Café\n01/03/2024,-8.00,Café"

	first := Rows(csvparse.Parse(text, csvparse.Options{Strategy: csvparse.FixedPosition}), models.OriginNubankPFPix)
	second := Rows(csvparse.Parse(text, csvparse.Options{Strategy: csvparse.FixedPosition}), models.OriginNubankPFPix)

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "re-ingesting identical text yields identical ids")
	}
	assert.NotEqual(t, first[1].ID, first[2].ID, "duplicate rows within one batch stay distinct")
}

func TestTransactionIDDeterministic(t *testing.T) {
	a := TransactionID(models.OriginNubankPFPix, "01/03/2024", "Mercado", "-50", 3)
	b := TransactionID(models.OriginNubankPFPix, "01/03/2024", "Mercado", "-50", 3)

	assert.Equal(t, a, b, "identical inputs yield identical ids")
	assert.Contains(t, a, "nubank_pf_pix-")
}

func TestTransactionIDDisambiguatesDuplicates(t *testing.T) {
	a := TransactionID(models.OriginNubankPFPix, "01/03/2024", "Café", "-8", 4)
	b := TransactionID(models.OriginNubankPFPix, "01/03/2024", "Café", "-8", 5)

	assert.NotEqual(t, a, b, "same purchase twice on one day keeps distinct ids")
}

func TestTransactionIDVariesByOrigin(t *testing.T) {
	a := TransactionID(models.OriginNubankPFPix, "01/03/2024", "Mercado", "-50", 0)
	b := TransactionID(models.OriginPicPayPFPix, "01/03/2024", "Mercado", "-50", 0)

	assert.NotEqual(t, a, b)
}

func TestManualID(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 42, time.UTC)
	assert.Equal(t, "manual-1710504000000000042", ManualID(now))
}
