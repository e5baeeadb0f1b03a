package schema

import (
	"math"

	"github.com/finprep/creditclean/internal/table"
)

// ApplyCategories replaces each numeric code in the named column with
// its label from mapping and declares the column categorical.
//
// A code present in the data but absent from the mapping becomes the
// missing/unmapped marker; that is deliberate and non-fatal, and the
// per-code counts are returned so the caller can surface them. Whether
// such codes are data errors or intentionally unlabeled categories is a
// property of the dataset, not something this function guesses at.
//
// Note on idempotence: the operation is a pure function of (column,
// mapping), but applying it twice is only a no-op when the label
// strings cannot themselves parse back into mapped codes. On an
// already-labeled column every label cell is left untouched, yet any
// lingering numeric cell is still mapped.
func ApplyCategories(t *table.Table, column string, mapping CategoryMap) (map[int]int, error) {
	if !t.HasColumn(column) {
		return nil, &table.UnknownColumnError{Column: column}
	}

	unmapped := make(map[int]int)

	for r := 0; r < t.NumRows(); r++ {
		c, err := t.Cell(r, column)
		if err != nil {
			return nil, err
		}

		v, ok := c.Number()
		if !ok {
			continue // missing stays missing, labels stay as they are
		}

		code := int(v)
		if float64(code) != v || math.IsNaN(v) {
			// Non-integer value in a coded column: nothing to map it to.
			unmapped[code]++
			if err := t.SetCell(r, column, table.Missing()); err != nil {
				return nil, err
			}
			continue
		}

		label, known := mapping[code]
		if !known {
			unmapped[code]++
			if err := t.SetCell(r, column, table.Missing()); err != nil {
				return nil, err
			}
			continue
		}

		if err := t.SetCell(r, column, table.Label(label)); err != nil {
			return nil, err
		}
	}

	if err := t.SetType(column, table.TypeCategorical); err != nil {
		return nil, err
	}

	return unmapped, nil
}
