// Package invoice reads commission-invoice text into register records.
package invoice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/normalize"
)

// pattern pairs a regular expression with the parser for its first capture group.
type pattern[T any] struct {
	name  string
	re    *regexp.Regexp
	parse func(string) (T, error)
}

func keep(s string) (string, error) { return s, nil }

// Brand id patterns, most specific first.
var brandIDPatterns = []pattern[string]{
	{"restaurant_store_id", regexp.MustCompile(`Restaurant / Store ID\s*:\s*(\d+)`), keep},
	{"store_id", regexp.MustCompile(`Store ID\s*:\s*(\d+)`), keep},
	{"bare_id", regexp.MustCompile(`ID\s*:\s*(\d+)`), keep},
}

// Grand total patterns, from the exact label down to the amount-in-words block.
var grandTotalPatterns = []pattern[decimal.Decimal]{
	{"grand_total_colon", regexp.MustCompile(`Grand Total\s*:\s*([\d,]+\.\d{2})`), normalize.Amount},
	{"grand_total_rs", regexp.MustCompile(`Grand Total\s*Rs\.\s*([\d,]+\.\d{2})`), normalize.Amount},
	{"total_amount_rs", regexp.MustCompile(`Total Amount \(Rs\.\)\s*([\d,]+\.\d{2})`), normalize.Amount},
	{"grand_total_lazy", regexp.MustCompile(`Grand Total[\s\S]*?(\d[\d,]*\.\d{2})`), normalize.Amount},
	{"total_amount_lazy", regexp.MustCompile(`Total\s*Amount\s*\(Rs\.\)[\s\S]*?(\d[\d,]*\.\d{2})`), normalize.Amount},
	{"amount_in_words", regexp.MustCompile(`Amount\s*in\s*Words[\s\S]*?(\d[\d,]*\.\d{2})`), normalize.Amount},
}

// firstMatch tries patterns in order. A pattern that matches but fails to parse
// hands over to the next one.
func firstMatch[T any](text string, patterns []pattern[T]) (T, string, bool) {
	var zero T
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		v, err := p.parse(m[1])
		if err != nil {
			continue
		}
		return v, p.name, true
	}
	return zero, "", false
}

// LocateBrandID returns the store id or entity.BrandIDUnknown.
func LocateBrandID(text string) string {
	if id, _, ok := firstMatch(text, brandIDPatterns); ok {
		return id
	}
	return entity.BrandIDUnknown
}

// LocateGrandTotal searches the text with line breaks flattened, since renderers
// split amounts across lines. ok is false when no pattern yields a number.
func LocateGrandTotal(text string) (total decimal.Decimal, patternName string, ok bool) {
	return firstMatch(strings.ReplaceAll(text, "\n", " "), grandTotalPatterns)
}

// BaseAmount backs the tax out of a tax-inclusive total: total / (1 + rate), 2 dp.
func BaseAmount(total, rate decimal.Decimal) decimal.Decimal {
	return normalize.Round2(total.Div(decimal.NewFromInt(1).Add(rate)))
}
