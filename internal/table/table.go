package table

import (
	"fmt"
	"strings"
)

// ColumnType is the declared semantic type of a column. It is assigned
// by policy (dataset configuration or a pipeline stage), never inferred
// beyond the retype step.
type ColumnType int

const (
	// TypeRaw is the initial state: string-like cells straight from the
	// source, not yet repaired.
	TypeRaw ColumnType = iota
	TypeNumeric
	TypeCategorical
	TypeIdentifier
)

// String returns the type name for diagnostics and summaries.
func (t ColumnType) String() string {
	switch t {
	case TypeNumeric:
		return "numeric"
	case TypeCategorical:
		return "categorical"
	case TypeIdentifier:
		return "identifier"
	default:
		return "raw"
	}
}

// Table is an ordered sequence of rows over named columns. Column names
// are unique within a table. See the package documentation for the
// structural invariants.
type Table struct {
	cols     []string
	colIndex map[string]int
	types    []ColumnType
	rows     [][]Cell

	headerExcised bool
}

// New creates an empty table with the given column names, all typed raw.
// Fails on duplicate or empty column names.
func New(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table: no columns")
	}

	t := &Table{
		cols:     make([]string, len(columns)),
		colIndex: make(map[string]int, len(columns)),
		types:    make([]ColumnType, len(columns)),
	}

	for i, name := range columns {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("table: column %d has an empty name", i)
		}
		if _, dup := t.colIndex[name]; dup {
			return nil, fmt.Errorf("table: duplicate column name %q", name)
		}
		t.cols[i] = name
		t.colIndex[name] = i
	}

	return t, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the column names in order. The slice is a copy.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.colIndex[name]
	return i, ok
}

// Type returns the declared type of the named column.
func (t *Table) Type(name string) (ColumnType, error) {
	i, ok := t.colIndex[name]
	if !ok {
		return TypeRaw, &UnknownColumnError{Column: name}
	}
	return t.types[i], nil
}

// SetType declares the type of the named column.
func (t *Table) SetType(name string, ct ColumnType) error {
	i, ok := t.colIndex[name]
	if !ok {
		return &UnknownColumnError{Column: name}
	}
	t.types[i] = ct
	return nil
}

// AppendRow adds a row. The row must have exactly one cell per column.
func (t *Table) AppendRow(row []Cell) error {
	if len(row) != len(t.cols) {
		return &MalformedSourceError{Row: len(t.rows), Got: len(row), Want: len(t.cols)}
	}
	t.rows = append(t.rows, row)
	return nil
}

// Cell returns the value at (row, column name).
func (t *Table) Cell(row int, column string) (Cell, error) {
	i, ok := t.colIndex[column]
	if !ok {
		return Cell{}, &UnknownColumnError{Column: column}
	}
	if row < 0 || row >= len(t.rows) {
		return Cell{}, fmt.Errorf("table: row %d out of range (%d rows)", row, len(t.rows))
	}
	return t.rows[row][i], nil
}

// SetCell replaces the value at (row, column name).
func (t *Table) SetCell(row int, column string, c Cell) error {
	i, ok := t.colIndex[column]
	if !ok {
		return &UnknownColumnError{Column: column}
	}
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("table: row %d out of range (%d rows)", row, len(t.rows))
	}
	t.rows[row][i] = c
	return nil
}

// Row returns the cells of one row in column order. The slice is a copy.
func (t *Table) Row(row int) ([]Cell, error) {
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("table: row %d out of range (%d rows)", row, len(t.rows))
	}
	out := make([]Cell, len(t.rows[row]))
	copy(out, t.rows[row])
	return out, nil
}

// Column returns the vertical slice of the named column. The slice is a
// copy.
func (t *Table) Column(name string) ([]Cell, error) {
	i, ok := t.colIndex[name]
	if !ok {
		return nil, &UnknownColumnError{Column: name}
	}
	out := make([]Cell, len(t.rows))
	for r := range t.rows {
		out[r] = t.rows[r][i]
	}
	return out, nil
}

// DropRow removes the row at the given index, shifting later rows up.
func (t *Table) DropRow(row int) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("table: row %d out of range (%d rows)", row, len(t.rows))
	}
	t.rows = append(t.rows[:row], t.rows[row+1:]...)
	return nil
}

// RenameColumns renames columns according to mapping (old name to new
// name). Every key must name an existing column; column order is
// preserved. A rename that would collide with a surviving name fails.
func (t *Table) RenameColumns(mapping map[string]string) error {
	for old := range mapping {
		if _, ok := t.colIndex[old]; !ok {
			return &UnknownColumnError{Column: old}
		}
	}

	next := make([]string, len(t.cols))
	nextIndex := make(map[string]int, len(t.cols))
	for i, name := range t.cols {
		if to, ok := mapping[name]; ok {
			name = to
		}
		if name == "" {
			return fmt.Errorf("table: rename of %q to an empty name", t.cols[i])
		}
		if _, dup := nextIndex[name]; dup {
			return fmt.Errorf("table: rename collides on column name %q", name)
		}
		next[i] = name
		nextIndex[name] = i
	}

	t.cols = next
	t.colIndex = nextIndex
	return nil
}

// HeaderExcised reports whether the label row has already been detached
// from this table.
func (t *Table) HeaderExcised() bool { return t.headerExcised }

// MarkHeaderExcised records that the label row was detached. It fails if
// called twice: running excision more than once is a logic error.
func (t *Table) MarkHeaderExcised() error {
	if t.headerExcised {
		return ErrHeaderExcised
	}
	t.headerExcised = true
	return nil
}
