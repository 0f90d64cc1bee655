package annexure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/common"
)

type sheet struct {
	name string
	rows [][]any
}

func writeWorkbook(t *testing.T, path string, sheets ...sheet) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			t.Fatal(err)
		}
		for i, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			r := row
			if err := f.SetSheetRow(s.name, cell, &r); err != nil {
				t.Fatal(err)
			}
		}
	}
	if len(sheets) > 0 {
		_ = f.DeleteSheet("Sheet1")
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func fullAnnexure() []sheet {
	return []sheet{
		{constants.SheetSummary, [][]any{
			{nil, "Biryani House"},
			{nil, "Rest. ID - 98765"},
			{nil, "Payout Period"},
			{nil, "01/04/2025 - 07/04/2025"},
			{nil, "Total Payout"},
			{nil, "1,500.75"},
		}},
		{constants.SheetPayoutBreakup, [][]any{
			{"SR.No", nil, "Particulars", "Delivered", "Cancelled", "Total"},
			{1, nil, "Item Total", 10, 1, 1500.75},
		}},
		{constants.SheetOrderLevel, [][]any{
			{"Order ID", "Amount"},
			{"A1", 100},
		}},
	}
}

func TestExtractFullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_Annexure_1.xlsx")
	writeWorkbook(t, path, fullAnnexure()...)

	doc, err := NewExtractor(DefaultLayout(), DefaultKeywords(), nil).Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Status != constants.DocumentOK {
		t.Errorf("status = %s, warnings = %v", doc.Status, doc.Warnings)
	}
	if doc.Summary == nil || doc.Summary.RestaurantID != "98765" || doc.Summary.TotalPayout.String() != "1500.75" {
		t.Errorf("summary = %+v", doc.Summary)
	}
	if len(doc.Breakup) != 1 || doc.Breakup[0].DeliveredOrders != 10 || doc.Breakup[0].RestaurantID != "98765" {
		t.Errorf("breakup = %+v", doc.Breakup)
	}
	if doc.Orders.Len() != 1 || doc.Orders.Rows[0][0] != "A1" {
		t.Errorf("orders = %+v", doc.Orders)
	}
}

func TestExtractMissingSummaryDropsBreakup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_Annexure_2.xlsx")
	sheets := fullAnnexure()[1:]
	writeWorkbook(t, path, sheets...)

	doc, err := NewExtractor(DefaultLayout(), DefaultKeywords(), nil).Extract(path)
	if !errors.Is(err, common.ErrSummaryUnavailable) || !errors.Is(err, common.ErrSheetMissing) {
		t.Fatalf("err = %v", err)
	}
	if doc.Status != constants.DocumentFailed || doc.Summary != nil {
		t.Errorf("doc = %+v", doc)
	}
	if doc.Breakup != nil {
		t.Errorf("breakup must be discarded without a summary: %+v", doc.Breakup)
	}
	if doc.Orders.Len() != 1 || doc.Orders.Rows[0][len(doc.Orders.Columns)-1] != "invoice_Annexure_2.xlsx" {
		t.Errorf("orders = %+v", doc.Orders)
	}
}

func TestExtractPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_Annexure_3.xlsx")
	writeWorkbook(t, path, fullAnnexure()[0])

	doc, err := NewExtractor(DefaultLayout(), DefaultKeywords(), nil).Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Status != constants.DocumentPartial {
		t.Errorf("status = %s", doc.Status)
	}
	if len(doc.Warnings) != 2 {
		t.Errorf("warnings = %v", doc.Warnings)
	}
}

func TestExtractCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_Annexure_bad.xlsx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := NewExtractor(DefaultLayout(), DefaultKeywords(), nil).Extract(path)
	if common.ErrorCode(err) != common.CodeWorkbookOpen {
		t.Errorf("err = %v", err)
	}
	if doc.FileName != "invoice_Annexure_bad.xlsx" || doc.Status != constants.DocumentFailed {
		t.Errorf("doc = %+v", doc)
	}
}

func setStyle(t *testing.T, f *excelize.File, sheet, cell string, st *excelize.Style) {
	t.Helper()
	id, err := f.NewStyle(st)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
		t.Fatal(err)
	}
}

func TestExtractFormattedCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_Annexure_fmt.xlsx")
	writeWorkbook(t, path,
		sheet{constants.SheetSummary, [][]any{
			{nil, "Biryani House"},
			{nil, "Total Payout"},
			{nil, 1234.56},
			{nil, "Total Orders"},
			{nil, 123456789},
			{nil, "Payout Settlement Date"},
			{nil, time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)},
		}},
		sheet{constants.SheetPayoutBreakup, [][]any{
			{"SR.No", nil, "Particulars", "Delivered", "Cancelled", "Total"},
			{1, nil, "Item Total", 1500, 2, 98765.43},
		}},
		sheet{constants.SheetOrderLevel, [][]any{
			{"Order ID", "Amount"},
			{"A1", 250.75},
		}},
	)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dateFmt := "yyyy-mm-dd"
	setStyle(t, f, constants.SheetSummary, "B3", &excelize.Style{NumFmt: 3})
	setStyle(t, f, constants.SheetSummary, "B5", &excelize.Style{NumFmt: 11})
	setStyle(t, f, constants.SheetSummary, "B7", &excelize.Style{CustomNumFmt: &dateFmt})
	setStyle(t, f, constants.SheetPayoutBreakup, "D2", &excelize.Style{NumFmt: 11})
	setStyle(t, f, constants.SheetPayoutBreakup, "F2", &excelize.Style{NumFmt: 3})
	setStyle(t, f, constants.SheetOrderLevel, "B2", &excelize.Style{NumFmt: 3})
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	doc, err := NewExtractor(DefaultLayout(), DefaultKeywords(), nil).Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	s := doc.Summary
	if s.TotalPayout.String() != "1234.56" || s.TotalOrders != 123456789 {
		t.Errorf("totals = %s / %d, want 1234.56 / 123456789", s.TotalPayout, s.TotalOrders)
	}
	if s.SettlementDate != "2025-04-09" {
		t.Errorf("settlement date = %q", s.SettlementDate)
	}
	if len(doc.Breakup) != 1 || doc.Breakup[0].DeliveredOrders != 1500 || doc.Breakup[0].Total.String() != "98765.43" {
		t.Errorf("breakup = %+v", doc.Breakup)
	}
	if got := doc.Orders.Rows[0][1]; got != 250.75 {
		t.Errorf("order amount = %#v, want float64 250.75", got)
	}
}
