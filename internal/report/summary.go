// Package report computes and renders read-only summaries of a cleaned
// table: per-column statistics for numeric columns and value counts for
// categorical ones. Nothing here mutates the table.
package report

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"

	"github.com/finprep/creditclean/internal/table"
)

// ValueCount is one categorical value with its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ColumnSummary describes one column of a cleaned table.
type ColumnSummary struct {
	Name    string
	Type    table.ColumnType
	Count   int // non-missing cells
	Missing int

	// Numeric statistics; NaN when the column is categorical or empty.
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64

	// Values holds categorical value counts, most frequent first.
	Values []ValueCount
}

// Summarize computes one ColumnSummary per column, in column order.
func Summarize(t *table.Table) ([]ColumnSummary, error) {
	out := make([]ColumnSummary, 0, t.NumCols())

	for _, name := range t.Columns() {
		ct, err := t.Type(name)
		if err != nil {
			return nil, err
		}
		cells, err := t.Column(name)
		if err != nil {
			return nil, err
		}

		sum := ColumnSummary{
			Name:   name,
			Type:   ct,
			Mean:   math.NaN(),
			Std:    math.NaN(),
			Min:    math.NaN(),
			Median: math.NaN(),
			Max:    math.NaN(),
		}

		switch ct {
		case table.TypeCategorical, table.TypeRaw:
			counts := make(map[string]int)
			for _, c := range cells {
				if c.IsMissing() {
					sum.Missing++
					continue
				}
				sum.Count++
				counts[c.String()]++
			}
			sum.Values = sortedCounts(counts)

		default: // numeric and identifier columns
			var vals []float64
			for _, c := range cells {
				v, ok := c.Number()
				if !ok {
					sum.Missing++
					continue
				}
				sum.Count++
				vals = append(vals, v)
			}
			if len(vals) > 0 {
				s := series.New(vals, series.Float, name)
				sum.Mean = s.Mean()
				sum.Std = s.StdDev()
				sum.Min = s.Min()
				sum.Median = s.Median()
				sum.Max = s.Max()
			}
		}

		out = append(out, sum)
	}

	return out, nil
}

// sortedCounts orders value counts by descending frequency, then by
// value for stable output.
func sortedCounts(counts map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
