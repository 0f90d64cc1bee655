package annexure

import (
	"strings"

	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/normalize"
	"github.com/joseph-ayodele/payout-recon/internal/workbook"
)

// ValueFunc pulls a raw value for a matched label at (row, col).
type ValueFunc func(g workbook.Grid, row, col int, label string) string

// Rule binds a label predicate to the summary field it fills.
type Rule struct {
	Field  string
	Match  func(label string) bool
	Value  ValueFunc
	Assign func(s *entity.Summary, raw string)
}

// SelfValue uses the label cell itself.
func SelfValue() ValueFunc {
	return func(_ workbook.Grid, _, _ int, label string) string { return label }
}

// InlineValue takes the text after the last delim in the label cell, or the whole
// cell when delim does not occur.
func InlineValue(delim string) ValueFunc {
	return func(_ workbook.Grid, _, _ int, label string) string {
		if i := strings.LastIndex(label, delim); i >= 0 {
			return label[i+len(delim):]
		}
		return label
	}
}

// NextRowValue reads the cell below the label. Out of range is empty, not an error.
func NextRowValue() ValueFunc {
	return func(g workbook.Grid, row, col int, _ string) string {
		return strings.TrimSpace(g.Value(row+1, col))
	}
}

// Contains matches labels holding any of words.
func Contains(words ...string) func(string) bool {
	return func(label string) bool {
		for _, w := range words {
			if strings.Contains(label, w) {
				return true
			}
		}
		return false
	}
}

// SummaryRules returns the ordered rule table for the "Summary" sheet. Order matters:
// the first matching rule claims the row.
func SummaryRules(kw Keywords) []Rule {
	return []Rule{
		{Field: "Brand", Match: Contains(kw.Brand...), Value: SelfValue(),
			Assign: func(s *entity.Summary, v string) { s.Brand = v }},
		{Field: "Location", Match: Contains(kw.Location...), Value: SelfValue(),
			Assign: func(s *entity.Summary, v string) { s.Location = v }},
		{Field: "City", Match: Contains(kw.City...), Value: SelfValue(),
			Assign: func(s *entity.Summary, v string) { s.City = v }},
		{Field: "Res-Id", Match: Contains("Rest. ID"), Value: InlineValue("Rest. ID - "),
			Assign: func(s *entity.Summary, v string) { s.RestaurantID = v }},
		{Field: "GSTIN", Match: Contains("GSTIN"), Value: InlineValue("GSTIN  - "),
			Assign: func(s *entity.Summary, v string) { s.GSTIN = v }},
		{Field: "Payout Period", Match: Contains("Payout Period"), Value: NextRowValue(),
			Assign: func(s *entity.Summary, v string) { s.PayoutPeriod = v }},
		{Field: "Payout Settlement Date", Match: Contains("Payout Settlement Date"), Value: NextRowValue(),
			Assign: func(s *entity.Summary, v string) { s.SettlementDate = v }},
		{Field: "Total Payout", Match: Contains("Total Payout"), Value: NextRowValue(),
			Assign: func(s *entity.Summary, v string) { s.TotalPayout = normalize.ToCurrency(v) }},
		{Field: "Total Orders", Match: Contains("Total Orders"), Value: NextRowValue(),
			Assign: func(s *entity.Summary, v string) { s.TotalOrders = normalize.ToInteger(v) }},
		{Field: "Bank UTR", Match: Contains("Bank UTR"), Value: NextRowValue(),
			Assign: func(s *entity.Summary, v string) { s.BankUTR = v }},
	}
}

// LocateSummary scans the label column once, top to bottom. Each row sets at most
// one field; fields never seen keep their zero value.
func LocateSummary(g workbook.Grid, labelCol int, rules []Rule, fileName string) (entity.Summary, []string) {
	s := entity.Summary{SourceFileName: fileName}
	var found []string
	for i := 0; i < g.Len(); i++ {
		cell, ok := g.Cell(i, labelCol)
		if !ok {
			continue
		}
		label := strings.TrimSpace(cell)
		for _, r := range rules {
			if r.Match(label) {
				r.Assign(&s, r.Value(g, i, labelCol, label))
				found = append(found, r.Field)
				break
			}
		}
	}
	return s, found
}
