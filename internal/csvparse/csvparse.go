// Package csvparse turns raw delimited text from bank and wallet exports
// into ordered field tuples. It is deliberately forgiving: malformed rows
// are skipped, never fatal, so one bad line cannot abort a whole batch.
package csvparse

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"rcampos/grana/internal/currencyutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Strategy selects how header rows and column roles are detected.
// The two strategies can disagree on ambiguous input, so the choice is
// an explicit per-call-site decision:
//
//   - FixedPosition is used for remote-sync ingestion. Column order is
//     assumed (date, amount, description, category) and a header row is
//     detected only by the amount cell of row 0 failing numeric parse.
//   - LabelSniffing is used for user-initiated file imports. The first
//     rows are scanned for recognizable header labels and column roles
//     follow the discovered positions.
type Strategy int

const (
	FixedPosition Strategy = iota
	LabelSniffing
)

// sniffWindow is how many leading rows LabelSniffing inspects for a header.
const sniffWindow = 10

// Row is one normalized field tuple produced by Parse.
type Row struct {
	Date        string
	Amount      decimal.Decimal
	Description string
	Category    string
	// Ordinal is the row's position in the parsed line sequence. It feeds
	// deterministic id construction, so re-parsing identical text yields
	// identical ordinals.
	Ordinal int
}

// Options control a single Parse call.
type Options struct {
	Strategy Strategy
	// DefaultCategory fills the category field when the source has no
	// category column or the cell is empty. Empty means models default.
	DefaultCategory string
}

// columnRoles maps field positions to their meaning for one parse pass.
type columnRoles struct {
	date, amount, desc, cat int
}

// fixedRoles is the assumed column order when no header labels are found.
var fixedRoles = columnRoles{date: 0, amount: 1, desc: 2, cat: 3}

// Parse splits raw text into rows and extracts (date, amount,
// description, category) tuples. Empty input yields an empty result, not
// an error. Input row order is preserved; no sorting happens here.
func Parse(text string, opts Options) []Row {
	defaultCategory := opts.DefaultCategory
	if defaultCategory == "" {
		defaultCategory = "Geral"
	}

	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	sep := detectSeparator(lines[0])

	roles := fixedRoles
	start := 0
	switch opts.Strategy {
	case LabelSniffing:
		if found, idx, sniffed := sniffHeader(lines, sep); found {
			roles = sniffed
			start = idx + 1
		}
	default:
		if hasFixedHeader(lines[0], sep) {
			start = 1
		}
	}

	maxNeeded := roles.date
	if roles.amount > maxNeeded {
		maxNeeded = roles.amount
	}
	if roles.desc > maxNeeded {
		maxNeeded = roles.desc
	}

	var rows []Row
	for i := start; i < len(lines); i++ {
		fields := splitFields(lines[i], sep)
		if len(fields) <= maxNeeded {
			continue
		}

		dateStr := fields[roles.date]
		desc := fields[roles.desc]
		amount, err := currencyutils.ParseAmount(fields[roles.amount])
		if err != nil || dateStr == "" || desc == "" {
			log.WithFields(logrus.Fields{
				"line": i,
			}).Debug("Skipping malformed row")
			continue
		}
		// Guards against a mis-detected header row slipping through.
		if strings.Contains(strings.ToLower(dateStr), "data") {
			continue
		}

		category := defaultCategory
		if roles.cat >= 0 && roles.cat < len(fields) && fields[roles.cat] != "" {
			category = fields[roles.cat]
		}

		rows = append(rows, Row{
			Date:        dateStr,
			Amount:      amount,
			Description: desc,
			Category:    category,
			Ordinal:     i,
		})
	}

	log.WithFields(logrus.Fields{
		"rows":  len(rows),
		"lines": len(lines),
	}).Debug("Parsed delimited text")
	return rows
}

// splitLines breaks text on \n or \r\n and discards blank lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// detectSeparator picks ";" when the first non-blank line contains one,
// "," otherwise.
func detectSeparator(firstLine string) string {
	if strings.Contains(firstLine, ";") {
		return ";"
	}
	return ","
}

// splitFields splits a line on the separator, trimming whitespace and
// surrounding quote characters from each field.
func splitFields(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"`)
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// hasFixedHeader reports whether row 0 looks like a header under the
// fixed-position assumption: the cell in the amount position fails to
// parse as a number.
func hasFixedHeader(firstLine, sep string) bool {
	fields := splitFields(firstLine, sep)
	if len(fields) <= fixedRoles.amount {
		return true
	}
	_, err := currencyutils.ParseAmount(fields[fixedRoles.amount])
	return err != nil
}

// Header label tokens recognized by LabelSniffing (case-insensitive
// substring match against each cell).
var (
	amountTokens = []string{"valor", "montante", "pago", "recebido", "quantia"}
	descTokens   = []string{"desc", "historico", "detalhe", "lançamento"}
)

// sniffHeader scans the first rows for one containing recognizable header
// labels. A row qualifies only when it names a date column and at least
// one of the amount or description columns. Roles not named keep their
// fixed-position default.
func sniffHeader(lines []string, sep string) (bool, int, columnRoles) {
	limit := len(lines)
	if limit > sniffWindow {
		limit = sniffWindow
	}

	for i := 0; i < limit; i++ {
		fields := splitFields(lines[i], sep)

		dateIdx := findColumn(fields, []string{"data"})
		amountIdx := findColumn(fields, amountTokens)
		descIdx := findColumn(fields, descTokens)
		catIdx := findColumn(fields, []string{"cat"})

		if dateIdx == -1 || (amountIdx == -1 && descIdx == -1) {
			continue
		}

		roles := fixedRoles
		roles.date = dateIdx
		if amountIdx != -1 {
			roles.amount = amountIdx
		}
		if descIdx != -1 {
			roles.desc = descIdx
		}
		if catIdx != -1 {
			roles.cat = catIdx
		}
		return true, i, roles
	}
	return false, -1, fixedRoles
}

// findColumn returns the index of the first field containing any of the
// tokens, or -1.
func findColumn(fields []string, tokens []string) int {
	for i, field := range fields {
		lower := strings.ToLower(field)
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				return i
			}
		}
	}
	return -1
}
