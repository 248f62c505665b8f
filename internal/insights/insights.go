// Package insights asks the Gemini API for a financial analysis of a
// transaction set. The service is an external collaborator: it can be
// unconfigured, slow or wrong, and every failure is surfaced to the
// caller instead of being guessed around.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"rcampos/grana/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// txTuple is the reduced view of a transaction sent to the model.
type txTuple struct {
	Date string  `json:"date"`
	Desc string  `json:"desc"`
	Val  float64 `json:"val"`
	Cat  string  `json:"cat"`
}

// Analyzer wraps a Gemini model for transaction analysis.
type Analyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewAnalyzer creates an analyzer. apiKey must be set; modelName falls
// back to a sensible default when empty.
func NewAnalyzer(ctx context.Context, apiKey, modelName string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Analyzer{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close releases the underlying API client.
func (a *Analyzer) Close() error {
	return a.client.Close()
}

// Analyze sends the transaction tuples to the model and decodes the
// structured insight object from its reply.
func (a *Analyzer) Analyze(ctx context.Context, txs []models.Transaction) (models.Insights, error) {
	prompt, err := buildPrompt(txs)
	if err != nil {
		return models.Insights{}, err
	}

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.Insights{}, fmt.Errorf("insight generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.Insights{}, fmt.Errorf("empty response from Gemini")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	insights, err := parseInsights(responseText)
	if err != nil {
		log.WithError(err).WithField("response", responseText).Warn("Unparseable AI response")
		return models.Insights{}, err
	}
	return insights, nil
}

// buildPrompt renders the analysis request with the transaction data
// embedded as JSON tuples.
func buildPrompt(txs []models.Transaction) (string, error) {
	tuples := make([]txTuple, 0, len(txs))
	for _, tx := range txs {
		val, _ := tx.Amount.Float64()
		tuples = append(tuples, txTuple{
			Date: tx.Date,
			Desc: tx.Description,
			Val:  val,
			Cat:  tx.Category,
		})
	}

	data, err := json.Marshal(tuples)
	if err != nil {
		return "", fmt.Errorf("error encoding transactions: %w", err)
	}

	return fmt.Sprintf(`Analise o seguinte extrato bancário e forneça insights financeiros.
Dados: %s

Responda APENAS com um objeto JSON contendo:
1. "summary": um breve resumo do mês financeiro.
2. "topCategories": um array de objetos {"category", "total"} com as 3 categorias onde mais se gastou.
3. "savingTips": um array com 3 dicas personalizadas para economizar baseadas nos dados.
4. "anomalies": um array com possíveis gastos estranhos ou assinaturas esquecidas.`, data), nil
}

// parseInsights decodes the model reply, tolerating markdown code fences
// around the JSON body.
func parseInsights(text string) (models.Insights, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var insights models.Insights
	if err := json.Unmarshal([]byte(clean), &insights); err != nil {
		return models.Insights{}, fmt.Errorf("could not parse AI response: %w", err)
	}
	return insights, nil
}
