package domain

// Recognized x-axis column names, in the order they are preferred when a
// table carries more than one.
var XAxisColumns = []string{"Month", "Length", "Height", "Stature"}

// Table is an in-memory tabular dataset: an ordered header row plus data
// rows. Rows may be ragged (shorter than the header) when the source
// reader delivered trailing empty cells trimmed.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Cell returns the value at (row, col), or "" when the row is too short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// IsEmpty reports whether the table has no data rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// RenameColumn renames the first column matching old. No-op when absent.
func (t *Table) RenameColumn(old, new string) {
	if i := t.ColumnIndex(old); i >= 0 {
		t.Columns[i] = new
	}
}

// DropColumn returns a copy of the table without the named column. The
// receiver is unchanged; column order of the remaining columns is kept.
func (t *Table) DropColumn(name string) *Table {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return t.Clone()
	}
	out := &Table{Name: t.Name, Columns: removeAt(t.Columns, idx)}
	for i := range t.Rows {
		row := make([]string, 0, len(t.Columns)-1)
		for j := range t.Columns {
			if j == idx {
				continue
			}
			row = append(row, t.Cell(i, j))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// MoveColumnFirst returns a copy of the table with the named column moved
// to position zero and all other columns keeping their relative order.
func (t *Table) MoveColumnFirst(name string) *Table {
	idx := t.ColumnIndex(name)
	if idx <= 0 {
		return t.Clone()
	}
	cols := make([]string, 0, len(t.Columns))
	cols = append(cols, name)
	cols = append(cols, removeAt(t.Columns, idx)...)
	out := &Table{Name: t.Name, Columns: cols}
	for i := range t.Rows {
		row := make([]string, 0, len(t.Columns))
		row = append(row, t.Cell(i, idx))
		for j := range t.Columns {
			if j == idx {
				continue
			}
			row = append(row, t.Cell(i, j))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{Name: t.Name, Columns: append([]string(nil), t.Columns...)}
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, append([]string(nil), r...))
	}
	return out
}

func removeAt(s []string, i int) []string {
	out := make([]string, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
