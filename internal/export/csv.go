// Package export writes a cleaned table back to delimited text. Export
// is peripheral to the repair core: the pipeline's product is the
// in-memory table, and this package only serializes it.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/finprep/creditclean/internal/table"
)

// WriteCSV writes the table as CSV: header row first, then one record
// per data row. Numbers use their shortest exact decimal form and the
// missing marker becomes an empty field.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	record := make([]string, t.NumCols())
	for r := 0; r < t.NumRows(); r++ {
		row, err := t.Row(r)
		if err != nil {
			return err
		}
		for i, c := range row {
			record[i] = c.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, creating or truncating it.
func WriteCSVFile(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
