// Package repair implements the two destructive stages of the pipeline:
// detaching a label row that was loaded as data, and coercing string
// columns to numeric with coerce-to-missing semantics.
package repair

import (
	"fmt"

	"github.com/finprep/creditclean/internal/table"
)

// DefaultMinLabelFraction is the default threshold for header
// detection: at least this fraction of row-0 cells must be non-numeric
// before the row is treated as the authoritative label row.
const DefaultMinLabelFraction = 0.8

// ExciseHeader detects the stacked-header pathology: the true,
// human-readable column labels were consumed as the first data row
// because the source carried a generic positional header above them.
//
// Row 0 is inspected; when at least minLabelFraction of its cells fail
// numeric parsing, the row is captured as the label row, removed from
// the data, and returned as a rename candidate map (current column name
// to label). Cells that are empty contribute no mapping entry.
//
// Calling ExciseHeader a second time on the same table fails with
// table.ErrHeaderExcised. When the heuristic does not fire the table is
// left untouched and table.ErrNoHeaderRow is returned: the pipeline
// refuses to guess.
func ExciseHeader(t *table.Table, minLabelFraction float64) (map[string]string, error) {
	if minLabelFraction <= 0 || minLabelFraction > 1 {
		return nil, fmt.Errorf("repair: min label fraction %v out of range (0, 1]", minLabelFraction)
	}
	if t.HeaderExcised() {
		return nil, table.ErrHeaderExcised
	}
	if t.NumRows() == 0 {
		return nil, fmt.Errorf("%w: table has no rows", table.ErrNoHeaderRow)
	}

	row, err := t.Row(0)
	if err != nil {
		return nil, err
	}

	labels := 0
	for _, c := range row {
		s, ok := c.Label()
		if !ok {
			continue
		}
		if _, numeric := ParseNumber(s); !numeric && s != "" {
			labels++
		}
	}

	fraction := float64(labels) / float64(len(row))
	if fraction < minLabelFraction {
		return nil, &table.NoHeaderRowError{LabelFraction: fraction, MinFraction: minLabelFraction}
	}

	renames := make(map[string]string, len(row))
	for i, name := range t.Columns() {
		if s, ok := row[i].Label(); ok && s != "" {
			renames[name] = s
		}
	}

	if err := t.DropRow(0); err != nil {
		return nil, err
	}
	if err := t.MarkHeaderExcised(); err != nil {
		return nil, err
	}

	return renames, nil
}
