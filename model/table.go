// Package model holds the data structures a merge invocation passes between
// stages: the all-string Table plus the run-level value objects.
package model

import (
	"fmt"
	"strings"
)

// Table is an ordered set of named columns over string-typed cells. The empty
// string is the null marker; no type coercion happens before output. Column
// names are unique, ColsIndex mirrors Cols.
type Table struct {
	Cols      []string
	ColsIndex map[string]int
	Rows      [][]string
}

func NewTable(cols []string) (*Table, error) {
	index := make(map[string]int, len(cols))
	for i, col := range cols {
		if _, ok := index[col]; ok {
			return nil, fmt.Errorf("duplicate column %q", col)
		}
		index[col] = i
	}
	return &Table{
		Cols:      append([]string(nil), cols...),
		ColsIndex: index,
		Rows:      make([][]string, 0),
	}, nil
}

// AddRow appends vals, padding or truncating to the column count.
func (t *Table) AddRow(vals []string) {
	row := make([]string, len(t.Cols))
	copy(row, vals)
	t.Rows = append(t.Rows, row)
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

func (t *Table) HasCol(name string) bool {
	_, ok := t.ColsIndex[name]
	return ok
}

// Value returns the cell at row r, column name; "" when the column is absent.
func (t *Table) Value(r int, name string) string {
	i, ok := t.ColsIndex[name]
	if !ok {
		return ""
	}
	return t.Rows[r][i]
}

func (t *Table) SetValue(r int, name string, v string) {
	if i, ok := t.ColsIndex[name]; ok {
		t.Rows[r][i] = v
	}
}

// Rename renames column old to new. It is a no-op when old is absent or new
// already exists, so repeated application is safe.
func (t *Table) Rename(old, new string) bool {
	i, ok := t.ColsIndex[old]
	if !ok {
		return false
	}
	if _, exists := t.ColsIndex[new]; exists {
		return false
	}
	t.Cols[i] = new
	delete(t.ColsIndex, old)
	t.ColsIndex[new] = i
	return true
}

// Drop removes the named columns and their cells. Unknown names are ignored.
func (t *Table) Drop(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	keep := make([]int, 0, len(t.Cols))
	cols := make([]string, 0, len(t.Cols))
	for i, col := range t.Cols {
		if !drop[col] {
			keep = append(keep, i)
			cols = append(cols, col)
		}
	}
	if len(cols) == len(t.Cols) {
		return
	}
	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		next := make([]string, len(keep))
		for j, i := range keep {
			next[j] = row[i]
		}
		rows[r] = next
	}
	t.Cols = cols
	t.Rows = rows
	t.ColsIndex = make(map[string]int, len(cols))
	for i, col := range cols {
		t.ColsIndex[col] = i
	}
}

// Select returns a new table holding exactly cols, in that order. Every
// requested column must exist.
func (t *Table) Select(cols []string) (*Table, error) {
	missing := make([]string, 0)
	src := make([]int, 0, len(cols))
	for _, col := range cols {
		i, ok := t.ColsIndex[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		src = append(src, i)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("columns not found: %s", strings.Join(missing, ", "))
	}
	out, err := NewTable(cols)
	if err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		next := make([]string, len(src))
		for j, i := range src {
			next[j] = row[i]
		}
		out.Rows = append(out.Rows, next)
	}
	return out, nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(%d cols, %d rows)", len(t.Cols), len(t.Rows))
}
