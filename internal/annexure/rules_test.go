package annexure

import (
	"slices"
	"testing"

	"github.com/joseph-ayodele/payout-recon/internal/workbook"
)

func summaryGrid() workbook.Grid {
	return workbook.Grid{
		{"", "Hyderabad Biryani House"},
		{"", "Whitefield Main Road"},
		{"", "Bangalore"},
		{"", "Rest. ID - 98765"},
		{"", "GSTIN  - 29ABCDE1234F1Z5"},
		{"", "Payout Period"},
		{"", "01/04/2025 - 07/04/2025"},
		{"", "Payout Settlement Date"},
		{"", "09/04/2025"},
		{"", "Total Payout"},
		{"", "₹1,234.50"},
		{"", "Total Orders"},
		{"", "1,234 orders"},
		{"", "Bank UTR"},
		{"", "UTR0001"},
	}
}

func TestLocateSummary(t *testing.T) {
	s, found := LocateSummary(summaryGrid(), 1, SummaryRules(DefaultKeywords()), "invoice_Annexure_1.xlsx")

	checks := []struct{ field, got, want string }{
		{"Brand", s.Brand, "Hyderabad Biryani House"},
		{"Location", s.Location, "Whitefield Main Road"},
		{"City", s.City, "Bangalore"},
		{"RestaurantID", s.RestaurantID, "98765"},
		{"GSTIN", s.GSTIN, "29ABCDE1234F1Z5"},
		{"PayoutPeriod", s.PayoutPeriod, "01/04/2025 - 07/04/2025"},
		{"SettlementDate", s.SettlementDate, "09/04/2025"},
		{"BankUTR", s.BankUTR, "UTR0001"},
		{"TotalPayout", s.TotalPayout.String(), "1234.5"},
		{"SourceFileName", s.SourceFileName, "invoice_Annexure_1.xlsx"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if s.TotalOrders != 1234 {
		t.Errorf("TotalOrders = %d", s.TotalOrders)
	}
	if len(found) != 10 {
		t.Errorf("found %d fields: %v", len(found), found)
	}
}

func TestLocateSummaryFirstRuleWins(t *testing.T) {
	// "Restaurant" is a brand keyword and is tested before the GSTIN rule.
	g := workbook.Grid{{"", "Restaurant GSTIN  - 29XYZ"}}
	s, found := LocateSummary(g, 1, SummaryRules(DefaultKeywords()), "f.xlsx")
	if s.Brand != "Restaurant GSTIN  - 29XYZ" || s.GSTIN != "" {
		t.Errorf("brand=%q gstin=%q", s.Brand, s.GSTIN)
	}
	if !slices.Equal(found, []string{"Brand"}) {
		t.Errorf("found = %v", found)
	}
}

func TestLocateSummaryMissingNextRow(t *testing.T) {
	g := workbook.Grid{
		{"", "Rest. ID 555"},
		{"", "Total Payout"},
	}
	s, _ := LocateSummary(g, 1, SummaryRules(DefaultKeywords()), "f.xlsx")
	if !s.TotalPayout.IsZero() {
		t.Errorf("TotalPayout = %s, want 0", s.TotalPayout)
	}
	// delimiter absent: whole cell is kept
	if s.RestaurantID != "Rest. ID 555" {
		t.Errorf("RestaurantID = %q", s.RestaurantID)
	}

	g = workbook.Grid{{"", "Payout Period"}}
	s, _ = LocateSummary(g, 1, SummaryRules(DefaultKeywords()), "f.xlsx")
	if s.PayoutPeriod != "" {
		t.Errorf("PayoutPeriod = %q, want empty", s.PayoutPeriod)
	}
}

func TestLocateSummaryEmptyGrid(t *testing.T) {
	s, found := LocateSummary(nil, 1, SummaryRules(DefaultKeywords()), "empty.xlsx")
	if s.SourceFileName != "empty.xlsx" || len(found) != 0 || !s.TotalPayout.IsZero() || s.TotalOrders != 0 {
		t.Errorf("unexpected summary %+v found=%v", s, found)
	}
}

func TestCustomKeywords(t *testing.T) {
	g := workbook.Grid{{"", "Pune Camp"}, {"", "Koregaon Park"}}
	s, _ := LocateSummary(g, 1, SummaryRules(Keywords{Brand: []string{"Camp"}, Location: []string{"Koregaon"}, City: []string{"Pune"}}), "f.xlsx")
	// "Pune Camp" matches the brand rule first.
	if s.Brand != "Pune Camp" || s.Location != "Koregaon Park" || s.City != "" {
		t.Errorf("summary = %+v", s)
	}
}
