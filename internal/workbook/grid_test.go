package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/payout-recon/internal/common"
)

func TestGridCell(t *testing.T) {
	g := Grid{
		{"a", "", "c"},
		{},
		{"x"},
	}
	tests := []struct {
		row, col int
		want     string
		ok       bool
	}{
		{0, 0, "a", true},
		{0, 1, "", false},
		{0, 2, "c", true},
		{0, 3, "", false},
		{1, 0, "", false},
		{3, 0, "", false},
		{-1, 0, "", false},
	}
	for _, tt := range tests {
		got, ok := g.Cell(tt.row, tt.col)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Cell(%d,%d) = %q,%v want %q,%v", tt.row, tt.col, got, ok, tt.want, tt.ok)
		}
	}
	if !g.BlankRow(1) || g.BlankRow(2) || !g.BlankRow(10) {
		t.Error("BlankRow mismatch")
	}
	if got := g.FindRow(0, 0, "x"); got != 2 {
		t.Errorf("FindRow = %d, want 2", got)
	}
	if got := g.FindRow(0, 0, "zzz"); got != -1 {
		t.Errorf("FindRow missing = %d, want -1", got)
	}
}

func TestOpenAndGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	if _, err := f.NewSheet("Summary"); err != nil {
		t.Fatal(err)
	}
	_ = f.SetCellValue("Summary", "B2", "Rest. ID - 98765")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	wb, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer wb.Close()

	g, err := wb.Sheet("Summary")
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if v, ok := g.Cell(1, 1); !ok || v != "Rest. ID - 98765" {
		t.Errorf("B2 = %q,%v", v, ok)
	}

	_, err = wb.Sheet("Order Level")
	if !errors.Is(err, common.ErrSheetMissing) {
		t.Errorf("missing sheet error = %v, want ErrSheetMissing", err)
	}
}

func TestOpenNotAWorkbook(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"), nil)
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != common.CodeWorkbookOpen {
		t.Errorf("Open error = %v, want %s", err, common.CodeWorkbookOpen)
	}
}
