package annexure

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/workbook"
)

// OrderTable finds the header row by content and slices everything below it.
// Rows above the header are discarded. Returns nil when no header row exists.
// summary may be nil, in which case the join columns are left blank. Numeric
// cells stay numbers.
func OrderTable(g workbook.Sheet, l Layout, summary *entity.Summary, fileName string) *entity.OrderTable {
	header := g.FindRow(l.OrderAnchorCol, 0, l.OrderAnchor)
	if header < 0 {
		return nil
	}
	width := len(g.Grid[header])
	var body []int
	for i := header + 1; i < g.Len(); i++ {
		if g.BlankRow(i) {
			continue
		}
		body = append(body, i)
		width = max(width, len(g.Grid[i]))
	}

	var key entity.JoinKey
	if summary != nil {
		key = summary.Key()
	}
	join := []struct{ col, val string }{
		{entity.ColBrand, key.Brand},
		{entity.ColRestaurantID, key.RestaurantID},
		{entity.ColPayoutPeriod, key.PayoutPeriod},
		{entity.ColFileName, fileName},
	}

	// A source column that already carries a join name is overwritten, not duplicated.
	cols := headerColumns(g.Grid[header], width)
	joinIdx := make([]int, len(join))
	for j, jc := range join {
		if k := slices.Index(cols, jc.col); k >= 0 {
			joinIdx[j] = k
			continue
		}
		joinIdx[j] = len(cols)
		cols = append(cols, jc.col)
	}

	t := &entity.OrderTable{Columns: cols, Rows: make([][]any, 0, len(body))}
	for _, r := range body {
		row := make([]any, len(cols))
		for c := 0; c < width; c++ {
			row[c] = g.Typed(r, c)
		}
		for j, jc := range join {
			row[joinIdx[j]] = jc.val
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// headerColumns names blank header cells by position and suffixes repeats so every
// column name is unique.
func headerColumns(cells []string, width int) []string {
	seen := make(map[string]int, width)
	cols := make([]string, width)
	for i := range cols {
		name := ""
		if i < len(cells) {
			name = strings.TrimSpace(cells[i])
		}
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		cols[i] = name
	}
	return cols
}
