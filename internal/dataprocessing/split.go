package dataprocessing

import (
	"growthref/pkg/contracts/domain"
)

// SplitBySex partitions a table carrying a per-row sex code (1 = boys,
// 2 = girls) into one table per gender. The sex column is dropped from
// both results and the x-axis column is moved to the front, the ordering
// the series combiner relies on. Rows whose code is neither 1 nor 2 are
// excluded; if every row is excluded both results are empty and the
// caller should treat the table as gender-unclassifiable.
func SplitBySex(t *domain.Table, sexColumn, xColumn string) (boys, girls *domain.Table) {
	return filterBySexCode(t, sexColumn, xColumn, domain.SexCodeBoys),
		filterBySexCode(t, sexColumn, xColumn, domain.SexCodeGirls)
}

func filterBySexCode(t *domain.Table, sexColumn, xColumn string, code int) *domain.Table {
	sexIdx := t.ColumnIndex(sexColumn)
	filtered := &domain.Table{Name: t.Name, Columns: append([]string(nil), t.Columns...)}
	if sexIdx < 0 {
		return filtered
	}
	for i := range t.Rows {
		v, ok := parseCell(t.Cell(i, sexIdx))
		if !ok || int(v) != code || v != float64(int(v)) {
			continue
		}
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Cell(i, j)
		}
		filtered.Rows = append(filtered.Rows, row)
	}
	return filtered.DropColumn(sexColumn).MoveColumnFirst(xColumn)
}
