package models

// CategoryTotal is one entry of the AI insight top-spend ranking.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Insights is the structured result returned by the AI analysis of a
// transaction set.
type Insights struct {
	Summary       string          `json:"summary"`
	TopCategories []CategoryTotal `json:"topCategories"`
	SavingTips    []string        `json:"savingTips"`
	Anomalies     []string        `json:"anomalies"`
}
