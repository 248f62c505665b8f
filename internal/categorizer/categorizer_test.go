package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcampos/grana/internal/models"
)

func TestCategorize(t *testing.T) {
	c := New([]CategoryRule{
		{Name: "Alimentação", Keywords: []string{"mercado", "padaria"}},
		{Name: "Transporte", Keywords: []string{"uber", "99"}},
	})

	tests := []struct {
		name        string
		description string
		expected    string
		matched     bool
	}{
		{"Keyword match", "Mercado Central", "Alimentação", true},
		{"Case insensitive", "UBER TRIP SP", "Transporte", true},
		{"Substring inside word", "Padaria do Zé", "Alimentação", true},
		{"No match", "Netflix", "", false},
		{"Empty description", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.Categorize(tc.description)
			assert.Equal(t, tc.matched, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCategorizeFirstRuleWins(t *testing.T) {
	c := New([]CategoryRule{
		{Name: "Assinaturas", Keywords: []string{"netflix"}},
		{Name: "Lazer", Keywords: []string{"netflix"}},
	})

	got, ok := c.Categorize("Netflix mensal")
	assert.True(t, ok)
	assert.Equal(t, "Assinaturas", got)
}

func TestApply(t *testing.T) {
	c := New([]CategoryRule{
		{Name: "Transporte", Keywords: []string{"uber"}},
	})

	txs := []models.Transaction{
		{Description: "Uber Trip", Category: models.DefaultCategory, Amount: decimal.NewFromInt(-30)},
		{Description: "Uber Trip", Category: "Viagem", Amount: decimal.NewFromInt(-30)},
		{Description: "Netflix", Category: models.DefaultCategory, Amount: decimal.NewFromInt(-40)},
	}

	c.Apply(txs)

	assert.Equal(t, "Transporte", txs[0].Category)
	assert.Equal(t, "Viagem", txs[1].Category, "source categories are never overwritten")
	assert.Equal(t, models.DefaultCategory, txs[2].Category)
}

func TestApplyNilCategorizer(t *testing.T) {
	var c *Categorizer

	txs := []models.Transaction{{Description: "Uber", Category: models.DefaultCategory}}
	c.Apply(txs)

	assert.Equal(t, models.DefaultCategory, txs[0].Category)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	rules := `categories:
  - name: Alimentação
    keywords: [mercado, padaria]
  - name: Transporte
    keywords: [uber]
`
	require.NoError(t, os.WriteFile(path, []byte(rules), 0600))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	got, ok := c.Categorize("Padaria do Zé")
	assert.True(t, ok)
	assert.Equal(t, "Alimentação", got)
}

func TestLoadFromFileMissing(t *testing.T) {
	c, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err, "a missing rules file disables categorization")
	_, ok := c.Categorize("mercado")
	assert.False(t, ok)
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {not: [valid"), 0600))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
