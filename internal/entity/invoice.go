package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BrandIDUnknown is recorded when no store id could be located on an invoice.
const BrandIDUnknown = "N/A"

// Invoice is one commission invoice PDF reduced to the register fields.
type Invoice struct {
	PayoutPeriod   string          `json:"payout_period"`
	SourceFileName string          `json:"source_file_name"`
	BrandID        string          `json:"brand_id"`
	Description    string          `json:"description"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	InvoiceNumber  string          `json:"invoice_number"`
	ExtractedAt    time.Time       `json:"extracted_at"`
}
