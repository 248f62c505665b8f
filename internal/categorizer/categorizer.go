// Package categorizer assigns categories to transactions that arrive
// without one, using keyword rules loaded from a YAML file. It is a
// best-effort local fallback: a missing rules file simply means every
// uncategorized row keeps the default bucket.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"rcampos/grana/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryRule maps a category name to the description keywords that
// select it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// rulesFile is the on-disk shape of categories.yaml.
type rulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// Categorizer matches transaction descriptions against keyword rules.
type Categorizer struct {
	rules []CategoryRule
}

// New creates a categorizer with an explicit rule set.
func New(rules []CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// LoadFromFile reads keyword rules from a YAML file. A missing file is
// not an error: it yields an empty categorizer.
func LoadFromFile(path string) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("No category rules file, keyword categorization disabled")
			return &Categorizer{}, nil
		}
		return nil, fmt.Errorf("error reading category rules: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing category rules: %w", err)
	}

	log.WithField("count", len(f.Categories)).Debug("Loaded category rules")
	return &Categorizer{rules: f.Categories}, nil
}

// Categorize returns the category matching the description, or false
// when no keyword matches. Matching is case-insensitive substring.
func (c *Categorizer) Categorize(description string) (string, bool) {
	if c == nil || len(c.rules) == 0 {
		return "", false
	}

	lower := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Name, true
			}
		}
	}
	return "", false
}

// Apply fills in categories for transactions still in the default
// bucket. Rows that already carry a category from the source are left
// alone.
func (c *Categorizer) Apply(txs []models.Transaction) {
	if c == nil || len(c.rules) == 0 {
		return
	}

	for i := range txs {
		if txs[i].Category != models.DefaultCategory {
			continue
		}
		if name, ok := c.Categorize(txs[i].Description); ok {
			txs[i].Category = name
		}
	}
}
