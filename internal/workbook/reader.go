// Package workbook reads annexure sheets into cell grids.
package workbook

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/payout-recon/internal/common"
)

// Workbook is an open spreadsheet whose sheets can be read as grids.
type Workbook struct {
	f         *excelize.File
	name      string
	dateStyle map[int]bool
	logger    *slog.Logger
}

// Open opens the workbook at path. A file that is not a readable xlsx fails here.
func Open(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError(common.CodeWorkbookOpen, filepath.Base(path), err)
	}
	return &Workbook{f: f, name: filepath.Base(path), dateStyle: map[int]bool{}, logger: logger}, nil
}

// Sheet reads sheet as a grid. Plain numeric cells hold their stored value, so a
// number format that rounds or abbreviates never reaches the caller. Text, date and
// error cells hold their displayed text.
func (w *Workbook) Sheet(sheet string) (Sheet, error) {
	text, err := w.f.GetRows(sheet)
	if err != nil {
		var missing excelize.ErrSheetNotExist
		if errors.As(err, &missing) {
			return Sheet{}, common.NewAppError(common.CodeSheetUnreadable, fmt.Sprintf("%s: sheet %q not found", w.name, sheet), common.ErrSheetMissing)
		}
		return Sheet{}, common.NewAppError(common.CodeSheetUnreadable, fmt.Sprintf("%s: read sheet %q", w.name, sheet), err)
	}
	raw, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, common.NewAppError(common.CodeSheetUnreadable, fmt.Sprintf("%s: read sheet %q", w.name, sheet), err)
	}

	s := Sheet{Grid: Grid(text), numbers: map[cellRef]float64{}}
	for r, row := range raw {
		for c, v := range row {
			n, ok, err := w.number(sheet, r, c, v)
			if err != nil {
				return Sheet{}, common.NewAppError(common.CodeSheetUnreadable, fmt.Sprintf("%s: sheet %q", w.name, sheet), err)
			}
			if !ok {
				continue
			}
			s.numbers[cellRef{r, c}] = n
			s.set(r, c, strconv.FormatFloat(n, 'f', -1, 64))
		}
	}
	w.logger.Debug("workbook.sheet.read", "file", w.name, "sheet", sheet, "rows", len(s.Grid), "numbers", len(s.numbers))
	return s, nil
}

// number reports whether the stored value v at (row, col) is a plain number: numeric
// cell type and a number format that is not a date or time.
func (w *Workbook) number(sheet string, row, col int, v string) (float64, bool, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false, nil
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return 0, false, err
	}
	typ, err := w.f.GetCellType(sheet, ref)
	if err != nil {
		return 0, false, err
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return 0, false, nil
	}
	style, err := w.f.GetCellStyle(sheet, ref)
	if err != nil {
		return 0, false, err
	}
	isDate, seen := w.dateStyle[style]
	if !seen {
		isDate = w.isDateStyle(style)
		w.dateStyle[style] = isDate
	}
	return n, !isDate, nil
}

func (w *Workbook) isDateStyle(idx int) bool {
	if idx == 0 {
		return false
	}
	st, err := w.f.GetStyle(idx)
	if err != nil || st == nil {
		return false
	}
	code := ""
	if st.CustomNumFmt != nil {
		code = *st.CustomNumFmt
	}
	return IsDateFormat(st.NumFmt, code)
}

var reFmtLiteral = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)

// IsDateFormat reports whether a number format renders dates or times. code is the
// custom format string, empty for built-in formats.
func IsDateFormat(id int, code string) bool {
	if code != "" {
		return strings.ContainsAny(strings.ToLower(reFmtLiteral.ReplaceAllString(code, "")), "ymdhs")
	}
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}
