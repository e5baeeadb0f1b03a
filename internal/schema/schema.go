// Package schema holds the configuration surface of the pipeline:
// dataset shapes, rename tables, and category mappings. All of it is
// data, not code; the built-in datasets are registered at init time the
// same way new ones would be.
package schema

import (
	"sort"

	"github.com/finprep/creditclean/internal/table"
)

// CategoryMap is a fixed mapping from a small integer code to its label
// string, scoped to exactly one column.
type CategoryMap map[int]string

// DatasetSpec describes one fixed, known dataset shape.
type DatasetSpec struct {
	// Key uniquely identifies the dataset, e.g. "uci-credit-default".
	Key string

	// Label is the human-readable dataset name.
	Label string

	// ColumnCount is the expected number of columns. A source with a
	// different width is structurally malformed.
	ColumnCount int

	// Renames maps the labels recovered from the excised header row to
	// domain-meaningful column names. Labels without an entry keep
	// their recovered name.
	Renames map[string]string

	// Types declares non-numeric column types by final (renamed) name.
	// Columns without an entry stay numeric after retyping.
	Types map[string]table.ColumnType

	// Categories maps final column names to their code-to-label tables.
	Categories map[string]CategoryMap
}

// FinalName resolves a recovered header label to its domain name.
func (s DatasetSpec) FinalName(label string) string {
	if to, ok := s.Renames[label]; ok {
		return to
	}
	return label
}

// CategoryColumns returns the names of labeled columns in sorted order.
func (s DatasetSpec) CategoryColumns() []string {
	out := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
