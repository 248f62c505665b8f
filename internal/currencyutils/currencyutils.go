// Package currencyutils provides locale-aware parsing of currency strings.
package currencyutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned when a cell cannot be interpreted as an
// amount. Callers use it to reject a row without aborting a batch.
var ErrNotANumber = errors.New("not a number")

// ParseAmount parses a Brazilian-formatted currency string into a signed
// decimal. It accepts "1.234,56", "1234,56", "1234.56", "R$ 42,00" and
// plain integers. Empty or unparseable input returns ErrNotANumber.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	clean := StandardizeAmount(amountStr)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount: %w", ErrNotANumber)
	}

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", amountStr, ErrNotANumber)
	}
	return amount, nil
}

// StandardizeAmount strips currency symbols, whitespace and quotes, and
// converts Brazilian separators to a form decimal.NewFromString accepts.
// When both "." and "," are present, "." is a thousands separator and
// "," the decimal separator (1.234,56 -> 1234.56). A lone "," is the
// decimal separator (1234,56 -> 1234.56).
func StandardizeAmount(amountStr string) string {
	replacer := strings.NewReplacer("R$", "", "\"", "", " ", "", "\t", "")
	clean := strings.TrimSpace(replacer.Replace(amountStr))

	if strings.Contains(clean, ",") && strings.Contains(clean, ".") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	return clean
}

// FormatAmount renders a decimal for display with the Brazilian currency
// prefix, keeping the minus sign in front of the symbol.
func FormatAmount(amount decimal.Decimal) string {
	abs := amount.Abs().StringFixed(2)
	formatted := strings.ReplaceAll(abs, ".", ",")
	if amount.IsNegative() {
		return "-R$ " + formatted
	}
	return "R$ " + formatted
}
