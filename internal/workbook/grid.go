package workbook

import "strings"

// Grid is the cell text of one sheet, row-major and 0-based.
// Rows are ragged: trailing empty cells are not stored.
type Grid [][]string

// Len returns the number of rows.
func (g Grid) Len() int { return len(g) }

// Cell returns the value at (row, col). ok is false when the cell is outside the
// grid or empty.
func (g Grid) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return "", false
	}
	v := g[row][col]
	if v == "" {
		return "", false
	}
	return v, true
}

// Value is Cell without the presence flag.
func (g Grid) Value(row, col int) string {
	v, _ := g.Cell(row, col)
	return v
}

// FindRow scans col top to bottom from start and returns the first row whose cell
// contains needle, or -1.
func (g Grid) FindRow(col, start int, needle string) int {
	for i := max(start, 0); i < len(g); i++ {
		if v, ok := g.Cell(i, col); ok && strings.Contains(v, needle) {
			return i
		}
	}
	return -1
}

// BlankRow reports whether every cell of row is empty or whitespace.
func (g Grid) BlankRow(row int) bool {
	if row < 0 || row >= len(g) {
		return true
	}
	for _, v := range g[row] {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type cellRef struct{ row, col int }

// Sheet is a Grid that also knows which cells hold plain numbers.
type Sheet struct {
	Grid
	numbers map[cellRef]float64
}

// set writes v at (row, col), growing the grid when a value has no display text.
func (s *Sheet) set(row, col int, v string) {
	for len(s.Grid) <= row {
		s.Grid = append(s.Grid, nil)
	}
	for len(s.Grid[row]) <= col {
		s.Grid[row] = append(s.Grid[row], "")
	}
	s.Grid[row][col] = v
}

// Number returns the stored value of a plain numeric cell.
func (s Sheet) Number(row, col int) (float64, bool) {
	n, ok := s.numbers[cellRef{row, col}]
	return n, ok
}

// Typed returns a float64 for plain numeric cells, the cell text otherwise, and nil
// for empty cells.
func (s Sheet) Typed(row, col int) any {
	if n, ok := s.Number(row, col); ok {
		return n
	}
	if v, ok := s.Cell(row, col); ok {
		return v
	}
	return nil
}
