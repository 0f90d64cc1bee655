package constants

// Sheet names read from annexures and written to the consolidated workbook.
const (
	SheetSummary       = "Summary"
	SheetPayoutBreakup = "Payout Breakup"
	SheetOrderLevel    = "Order Level"
)

// SheetCommissionInvoice is the register sheet the invoice pipeline fills.
const SheetCommissionInvoice = "Commission Invoice"

// DefaultSheet is the sheet excelize creates in a new workbook.
const DefaultSheet = "Sheet1"
