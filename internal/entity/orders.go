package entity

// Join columns appended to every order-level table.
const (
	ColBrand        = "Brand"
	ColRestaurantID = "Res-Id"
	ColPayoutPeriod = "Payout Period"
	ColFileName     = "File Name"
)

// OrderTable is the "Order Level" sheet of one annexure, sliced below its header row.
// Columns come from the source header; Rows are aligned to Columns. A cell is a
// float64 for numbers, a string for text, or nil when empty.
type OrderTable struct {
	Columns []string
	Rows    [][]any
}

// Len reports the number of body rows.
func (t *OrderTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
