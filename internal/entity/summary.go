package entity

import "github.com/shopspring/decimal"

// Summary is the per-annexure header block read from the "Summary" sheet.
// Every field except SourceFileName may stay at its zero value.
type Summary struct {
	Brand          string          `json:"brand"`
	Location       string          `json:"location"`
	City           string          `json:"city"`
	RestaurantID   string          `json:"restaurant_id"`
	GSTIN          string          `json:"gstin"`
	PayoutPeriod   string          `json:"payout_period"`
	SettlementDate string          `json:"settlement_date"`
	TotalPayout    decimal.Decimal `json:"total_payout"`
	TotalOrders    int64           `json:"total_orders"`
	BankUTR        string          `json:"bank_utr"`
	SourceFileName string          `json:"source_file_name"`
}

// JoinKey holds the summary fields copied onto child rows.
type JoinKey struct {
	Brand        string `json:"brand"`
	RestaurantID string `json:"restaurant_id"`
	PayoutPeriod string `json:"payout_period"`
}

// Key returns the join fields of s.
func (s Summary) Key() JoinKey {
	return JoinKey{Brand: s.Brand, RestaurantID: s.RestaurantID, PayoutPeriod: s.PayoutPeriod}
}
