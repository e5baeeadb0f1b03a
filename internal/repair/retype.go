package repair

import (
	"github.com/finprep/creditclean/internal/table"
)

// Diagnostics counts, per column, the values that retyping coerced to
// the missing marker because they did not parse as numbers. Coercion is
// never an error; the caller audits these counts. Empty cells become
// missing without being counted: an absent value is not a parse failure.
type Diagnostics map[string]int

// Total returns the sum of all per-column counts.
func (d Diagnostics) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Retype coerces every raw (string-typed) column of t to numeric using
// coerce-to-missing semantics: a cell that does not parse becomes the
// missing marker and is tallied in the returned Diagnostics. A column
// is always declared numeric afterwards, no matter how many cells were
// coerced; rejecting a column over induced missing values is the
// caller's policy decision, not the retyper's.
//
// Columns already typed numeric, categorical, or identifier are left
// alone. Cells that already hold numbers pass through unchanged.
func Retype(t *table.Table) (Diagnostics, error) {
	diags := make(Diagnostics)

	for _, name := range t.Columns() {
		ct, err := t.Type(name)
		if err != nil {
			return nil, err
		}
		if ct != table.TypeRaw {
			continue
		}
		if err := retypeColumn(t, name, diags); err != nil {
			return nil, err
		}
	}

	return diags, nil
}

// RetypeColumns coerces only the named columns. Naming a column that
// does not exist is schema drift and fails with table.ErrUnknownColumn.
func RetypeColumns(t *table.Table, columns ...string) (Diagnostics, error) {
	diags := make(Diagnostics)

	for _, name := range columns {
		if !t.HasColumn(name) {
			return nil, &table.UnknownColumnError{Column: name}
		}
		if err := retypeColumn(t, name, diags); err != nil {
			return nil, err
		}
	}

	return diags, nil
}

func retypeColumn(t *table.Table, name string, diags Diagnostics) error {
	for r := 0; r < t.NumRows(); r++ {
		c, err := t.Cell(r, name)
		if err != nil {
			return err
		}

		switch c.Kind() {
		case table.KindNumber, table.KindMissing:
			continue
		}

		s, _ := c.Label()
		if v, ok := ParseNumber(s); ok {
			if err := t.SetCell(r, name, table.Number(v)); err != nil {
				return err
			}
			continue
		}

		if s != "" {
			diags[name]++
		}
		if err := t.SetCell(r, name, table.Missing()); err != nil {
			return err
		}
	}

	return t.SetType(name, table.TypeNumeric)
}
