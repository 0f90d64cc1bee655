// Package normalize turns noisy spreadsheet and PDF cell text into numbers.
//
// Both entry points are total: anything that cannot be read as a number becomes zero.
// Annexure cells mix currency symbols, thousands separators and annotation text, and a
// single bad cell must not sink the whole batch.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TotalRowSentinel is the caption some annexures leave in numeric columns of the totals row.
const TotalRowSentinel = "Total Orders (Delivered + Cancelled)"

var (
	reNotCurrency = regexp.MustCompile(`[^\d.]`)
	reNotDigit    = regexp.MustCompile(`\D`)
)

func blank(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == TotalRowSentinel
}

// ToCurrency keeps only digits and dots from raw and parses the rest.
// Signs are dropped along with every other non-numeric character.
func ToCurrency(raw string) decimal.Decimal {
	if blank(raw) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(reNotCurrency.ReplaceAllString(raw, ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToInteger keeps only digits from raw and parses them. Overflow yields 0.
func ToInteger(raw string) int64 {
	if blank(raw) {
		return 0
	}
	n, err := strconv.ParseInt(reNotDigit.ReplaceAllString(raw, ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Amount parses a matched money literal such as "1,234.56".
func Amount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Float converts d for spreadsheet cells, which only hold float64.
func Float(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
