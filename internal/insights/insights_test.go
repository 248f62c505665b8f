package insights

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcampos/grana/internal/models"
)

func TestNewAnalyzerRequiresAPIKey(t *testing.T) {
	_, err := NewAnalyzer(context.Background(), "", "gemini-2.0-flash")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestBuildPrompt(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:        "01/03/2024",
			Description: "Mercado",
			Amount:      decimal.NewFromFloat(-50.5),
			Category:    "Alimentação",
		},
	}

	prompt, err := buildPrompt(txs)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"date":"01/03/2024"`)
	assert.Contains(t, prompt, `"desc":"Mercado"`)
	assert.Contains(t, prompt, `"val":-50.5`)
	assert.Contains(t, prompt, `"summary"`)
	assert.True(t, strings.Contains(prompt, "JSON"))
}

func TestParseInsights(t *testing.T) {
	body := `{"summary":"Mês equilibrado","topCategories":[{"category":"Alimentação","total":450.5}],"savingTips":["Cozinhe em casa"],"anomalies":["Assinatura duplicada"]}`

	tests := []struct {
		name string
		text string
	}{
		{"Plain JSON", body},
		{"Fenced JSON", "```json\n" + body + "\n```"},
		{"Bare fences", "```\n" + body + "\n```"},
		{"Surrounding whitespace", "\n  " + body + "  \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseInsights(tc.text)
			require.NoError(t, err)

			assert.Equal(t, "Mês equilibrado", got.Summary)
			require.Len(t, got.TopCategories, 1)
			assert.Equal(t, "Alimentação", got.TopCategories[0].Category)
			assert.InDelta(t, 450.5, got.TopCategories[0].Total, 0.001)
			assert.Equal(t, []string{"Cozinhe em casa"}, got.SavingTips)
			assert.Equal(t, []string{"Assinatura duplicada"}, got.Anomalies)
		})
	}
}

func TestParseInsightsRejectsGarbage(t *testing.T) {
	_, err := parseInsights("Desculpe, não consegui analisar os dados.")
	assert.Error(t, err)
}
