// Package export writes the consolidated annexure workbook and the invoice register.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/common"
	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/normalize"
)

// Table is one output sheet: a header row and positional rows.
type Table struct {
	Sheet   string
	Columns []string
	Rows    [][]any
}

var (
	summaryColumns = []string{
		"Brand", "Location", "City", "Res-Id", "GSTIN", "Payout Period",
		"Payout Settlement Date", "Total Payout", "Total Orders", "Bank UTR", "File Name",
	}
	breakupColumns = []string{
		"SR.No", "Particulars", "Delivered Orders", "Cancelled Orders", "Total",
		"Brand", "Res-Id", "Payout Period", "File Name",
	}
)

// Consolidation accumulates per-document records in file order. It is append-only.
type Consolidation struct {
	summaries []entity.Summary
	breakup   []entity.BreakupLine
	orders    []*entity.OrderTable
}

// Add appends what one document produced. Nil or empty parts are ignored.
func (c *Consolidation) Add(summary *entity.Summary, breakup []entity.BreakupLine, orders *entity.OrderTable) {
	if summary != nil {
		c.summaries = append(c.summaries, *summary)
	}
	c.breakup = append(c.breakup, breakup...)
	if orders.Len() > 0 {
		c.orders = append(c.orders, orders)
	}
}

// Tables returns the non-empty output tables in sheet order.
func (c *Consolidation) Tables() []Table {
	var out []Table
	if len(c.summaries) > 0 {
		t := Table{Sheet: constants.SheetSummary, Columns: summaryColumns}
		for _, s := range c.summaries {
			t.Rows = append(t.Rows, []any{
				s.Brand, s.Location, s.City, s.RestaurantID, s.GSTIN, s.PayoutPeriod,
				s.SettlementDate, normalize.Float(s.TotalPayout), s.TotalOrders, s.BankUTR, s.SourceFileName,
			})
		}
		out = append(out, t)
	}
	if len(c.breakup) > 0 {
		t := Table{Sheet: constants.SheetPayoutBreakup, Columns: breakupColumns}
		for _, b := range c.breakup {
			t.Rows = append(t.Rows, []any{
				b.SerialNumber, b.Particulars, b.DeliveredOrders, b.CancelledOrders, normalize.Float(b.Total),
				b.Brand, b.RestaurantID, b.PayoutPeriod, b.SourceFileName,
			})
		}
		out = append(out, t)
	}
	if len(c.orders) > 0 {
		out = append(out, unionOrders(c.orders))
	}
	return out
}

// unionOrders stacks order tables whose columns may differ. Columns keep their first
// appearance order and cells a table lacks stay empty.
func unionOrders(tables []*entity.OrderTable) Table {
	t := Table{Sheet: constants.SheetOrderLevel}
	index := map[string]int{}
	for _, ot := range tables {
		for _, col := range ot.Columns {
			if _, ok := index[col]; !ok {
				index[col] = len(t.Columns)
				t.Columns = append(t.Columns, col)
			}
		}
	}
	for _, ot := range tables {
		for _, src := range ot.Rows {
			row := make([]any, len(t.Columns))
			for i, v := range src {
				if i >= len(ot.Columns) || v == nil || v == "" {
					continue
				}
				row[index[ot.Columns[i]]] = v
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// ConsolidatedFileName is the timestamped output name for a run started at now.
func ConsolidatedFileName(now time.Time) string {
	return constants.ConsolidatedPrefix + now.Format(constants.ConsolidatedTimeLayout) + "." + constants.XLSXExt
}

// WriteTables saves tables as sheets of a new workbook at path. Without tables the
// workbook keeps only its default sheet.
func WriteTables(path string, tables []Table, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	for _, t := range tables {
		if err := writeSheet(f, t); err != nil {
			return common.NewAppError(common.CodeOutput, fmt.Sprintf("%s: sheet %q", filepath.Base(path), t.Sheet), err)
		}
	}
	if len(tables) > 0 {
		if err := f.DeleteSheet(constants.DefaultSheet); err != nil {
			return common.NewAppError(common.CodeOutput, filepath.Base(path), err)
		}
		if idx, err := f.GetSheetIndex(tables[0].Sheet); err == nil && idx >= 0 {
			f.SetActiveSheet(idx)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return common.NewAppError(common.CodeOutput, "save "+path, err)
	}

	rows := 0
	for _, t := range tables {
		rows += len(t.Rows)
	}
	logger.Info("export.xlsx.ok",
		"file", filepath.Base(path),
		"sheets", len(tables),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func writeSheet(f *excelize.File, t Table) error {
	if _, err := f.NewSheet(t.Sheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(t.Sheet)
	if err != nil {
		return err
	}
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
