package dataprocessing

import (
	"math"
	"sort"

	"growthref/pkg/contracts/domain"
)

// Combine concatenates tables sharing one logical series, sorts the rows
// ascending by the x-axis column and removes duplicate x values keeping
// the last occurrence. Input order is the conflict-resolution policy:
// later tables are assumed to carry the more specific age sub-range, so
// their rows win at overlapping x values. The sort is stable to preserve
// that ordering. An empty input yields an empty table.
func Combine(tables []*domain.Table, xColumn string) *domain.Table {
	out := &domain.Table{Columns: []string{}}
	if len(tables) == 0 {
		return out
	}

	// Union of columns in first-seen order, the way a frame concat
	// behaves; tables missing a column contribute empty cells.
	seen := map[string]bool{}
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c] {
				seen[c] = true
				out.Columns = append(out.Columns, c)
			}
		}
	}

	for _, t := range tables {
		idx := make([]int, len(out.Columns))
		for j, c := range out.Columns {
			idx[j] = t.ColumnIndex(c)
		}
		for i := range t.Rows {
			row := make([]string, len(out.Columns))
			for j, src := range idx {
				if src >= 0 {
					row[j] = t.Cell(i, src)
				}
			}
			out.Rows = append(out.Rows, row)
		}
	}

	xIdx := 0
	for j, c := range out.Columns {
		if c == xColumn {
			xIdx = j
			break
		}
	}
	sort.SliceStable(out.Rows, func(a, b int) bool {
		return xValue(out.Rows[a], xIdx) < xValue(out.Rows[b], xIdx)
	})

	out.Rows = dedupeLast(out.Rows, xIdx)
	return out
}

// xValue parses the x cell of a row; rows with an unparsable x sort last.
func xValue(row []string, xIdx int) float64 {
	if xIdx < len(row) {
		if v, ok := parseCell(row[xIdx]); ok {
			return v
		}
	}
	return math.Inf(1)
}

// dedupeLast removes rows sharing an x value with a later row, keeping
// sorted order for the survivors.
func dedupeLast(rows [][]string, xIdx int) [][]string {
	last := make(map[float64]int, len(rows))
	for i, row := range rows {
		last[xValue(row, xIdx)] = i
	}
	kept := rows[:0]
	for i, row := range rows {
		if last[xValue(row, xIdx)] == i {
			kept = append(kept, row)
		}
	}
	return kept
}
