// Package ingest loads delimited-text sources into an in-memory Table.
//
// The loader is deliberately dumb: the first physical row becomes the
// column names (even when it is a spurious positional header) and every
// following row becomes a data row of raw label cells. Repairing the
// result is the job of the repair package.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/finprep/creditclean/internal/table"
)

// Load reads a delimited source into a Table. All cells start as raw
// labels; no typing or repair happens here.
//
// Fails with table.ErrSourceUnavailable when the source cannot be read,
// and with table.ErrMalformedSource when a row's column count differs
// from the first row's.
func Load(r io.Reader) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", table.ErrSourceUnavailable, err)
	}

	records, err := parseCSV(sanitizeUTF8(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", table.ErrMalformedSource, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty source", table.ErrMalformedSource)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = CleanCell(h)
	}

	t, err := table.New(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", table.ErrMalformedSource, err)
	}

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, &table.MalformedSourceError{Row: i + 1, Got: len(rec), Want: len(header)}
		}
		row := make([]table.Cell, len(rec))
		for j, v := range rec {
			row[j] = table.Label(CleanCell(v))
		}
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// LoadFile opens path and loads it. A failure to open the file is a
// table.ErrSourceUnavailable.
func LoadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", table.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return Load(f)
}

// CleanCell removes common CSV artifacts from a cell value:
//   - trims whitespace and a leading BOM
//   - removes an Excel formula prefix (="...")
//   - removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// sanitizeUTF8 replaces invalid byte sequences with the replacement
// rune so the CSV reader never sees broken encoding.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // column counts are checked against the header, with row context
	r.LazyQuotes = true
	return r.ReadAll()
}
