package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	prettytable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/finprep/creditclean/internal/pipeline"
)

// Render writes the column summaries as a text table.
func Render(w io.Writer, sums []ColumnSummary) {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(prettytable.StyleLight)

	tw.AppendHeader(prettytable.Row{
		"column", "type", "count", "missing", "mean", "std", "min", "median", "max", "values",
	})

	for _, s := range sums {
		tw.AppendRow(prettytable.Row{
			s.Name,
			s.Type.String(),
			s.Count,
			s.Missing,
			stat(s.Mean),
			stat(s.Std),
			stat(s.Min),
			stat(s.Median),
			stat(s.Max),
			topValues(s.Values, 4),
		})
	}

	tw.Render()
}

// RenderRun writes the pipeline run report: stage timings plus the
// aggregated value-level diagnostics.
func RenderRun(w io.Writer, r *pipeline.Report) {
	fmt.Fprintf(w, "run %s  dataset=%s  phase=%s  rows=%d  columns=%d  took=%s\n",
		r.RunID, r.Dataset, r.Phase, r.Rows, r.Columns, r.Duration.Round(time.Millisecond))

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(prettytable.StyleLight)
	tw.AppendHeader(prettytable.Row{"stage", "duration"})
	for _, st := range r.Stages {
		tw.AppendRow(prettytable.Row{string(st.Phase), st.Duration.Round(time.Microsecond)})
	}
	tw.Render()

	if n := r.CoercedToMissing.Total(); n > 0 {
		fmt.Fprintf(w, "coerced to missing: %d value(s)\n", n)
		for col, c := range r.CoercedToMissing {
			fmt.Fprintf(w, "  %s: %d\n", col, c)
		}
	} else {
		fmt.Fprintln(w, "coerced to missing: none")
	}

	if r.UnmappedTotal() > 0 {
		fmt.Fprintf(w, "unmapped category codes: %d value(s)\n", r.UnmappedTotal())
		for col, codes := range r.UnmappedCodes {
			for code, c := range codes {
				fmt.Fprintf(w, "  %s code %d: %d\n", col, code, c)
			}
		}
	}

	if r.Error != "" {
		fmt.Fprintf(w, "error: %s\n", r.Error)
	}
}

// stat formats a numeric statistic, rendering NaN as a dash.
func stat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// topValues renders the first n value counts as "value(count)" pairs.
func topValues(values []ValueCount, n int) string {
	if len(values) == 0 {
		return "-"
	}
	if len(values) > n {
		values = values[:n]
	}
	parts := make([]string, len(values))
	for i, vc := range values {
		v := vc.Value
		if v == "" {
			v = "(missing)"
		}
		parts[i] = fmt.Sprintf("%s(%d)", v, vc.Count)
	}
	return strings.Join(parts, " ")
}
