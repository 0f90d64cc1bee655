package annexure

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/normalize"
	"github.com/joseph-ayodele/payout-recon/internal/workbook"
)

// Spreadsheet error literals; a numeric cell holding one marks its row as malformed.
var formulaErrors = map[string]struct{}{
	"#REF!": {}, "#VALUE!": {}, "#DIV/0!": {}, "#N/A": {}, "#NAME?": {}, "#NUM!": {}, "#NULL!": {},
}

// BreakupTable locates the particulars header and returns the lines below it.
// found is false when the anchor never appears; a found table may still be empty.
// skipped counts malformed rows that were dropped.
func BreakupTable(g workbook.Grid, l Layout, summary entity.Summary) (lines []entity.BreakupLine, skipped int, found bool) {
	anchor := g.FindRow(l.BreakupAnchorCol, 0, l.BreakupAnchor)
	if anchor < 0 {
		return nil, 0, false
	}
	key := summary.Key()
	lines = []entity.BreakupLine{}
	for i := anchor + 1; i < g.Len(); i++ {
		particulars, ok := g.Cell(i, l.BreakupAnchorCol)
		if !ok {
			continue
		}
		line, err := breakupLine(g, l, i, particulars)
		if err != nil {
			skipped++
			continue
		}
		line.JoinKey = key
		line.SourceFileName = summary.SourceFileName
		lines = append(lines, line)
	}
	return lines, skipped, true
}

func breakupLine(g workbook.Grid, l Layout, row int, particulars string) (entity.BreakupLine, error) {
	for _, col := range []int{l.DeliveredCol, l.CancelledCol, l.TotalCol} {
		if _, bad := formulaErrors[strings.TrimSpace(g.Value(row, col))]; bad {
			return entity.BreakupLine{}, fmt.Errorf("row %d: formula error in column %d", row+1, col+1)
		}
	}
	return entity.BreakupLine{
		SerialNumber:    strings.TrimSpace(g.Value(row, l.BreakupSerialCol)),
		Particulars:     strings.TrimSpace(particulars),
		DeliveredOrders: normalize.ToInteger(g.Value(row, l.DeliveredCol)),
		CancelledOrders: normalize.ToInteger(g.Value(row, l.CancelledCol)),
		Total:           normalize.ToCurrency(g.Value(row, l.TotalCol)),
	}, nil
}
