package entity

import "github.com/shopspring/decimal"

// BreakupLine is one row of the "Payout Breakup" particulars table.
type BreakupLine struct {
	SerialNumber    string          `json:"serial_number"`
	Particulars     string          `json:"particulars"`
	DeliveredOrders int64           `json:"delivered_orders"`
	CancelledOrders int64           `json:"cancelled_orders"`
	Total           decimal.Decimal `json:"total"`
	JoinKey
	SourceFileName string `json:"source_file_name"`
}
