// Package annexure extracts summary, breakup and order tables from payout annexures.
package annexure

// Layout fixes where the loosely structured sheets keep their anchors.
type Layout struct {
	SummaryLabelCol int

	BreakupAnchorCol int
	BreakupAnchor    string
	BreakupSerialCol int
	DeliveredCol     int
	CancelledCol     int
	TotalCol         int

	OrderAnchorCol int
	OrderAnchor    string
}

// DefaultLayout matches the partner's current annexure template.
func DefaultLayout() Layout {
	return Layout{
		SummaryLabelCol:  1,
		BreakupAnchorCol: 2,
		BreakupAnchor:    "Particulars",
		BreakupSerialCol: 0,
		DeliveredCol:     3,
		CancelledCol:     4,
		TotalCol:         5,
		OrderAnchorCol:   0,
		OrderAnchor:      "Order ID",
	}
}

// Keywords are the merchant-specific words that identify brand, location and city cells.
type Keywords struct {
	Brand    []string
	Location []string
	City     []string
}

// DefaultKeywords returns the words used by the original merchant's annexures.
func DefaultKeywords() Keywords {
	return Keywords{
		Brand:    []string{"Biryani", "Restaurant"},
		Location: []string{"Whitefield"},
		City:     []string{"Bangalore"},
	}
}
