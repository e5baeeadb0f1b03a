// Package pipeline composes the repair stages into one sequential run:
// load, excise the stacked header, retype, rename, relabel. The table
// is exclusively owned by the run and mutated in place; the whole
// pipeline executes on a single goroutine and either completes or fails
// outright.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/finprep/creditclean/internal/ingest"
	"github.com/finprep/creditclean/internal/logging"
	"github.com/finprep/creditclean/internal/repair"
	"github.com/finprep/creditclean/internal/schema"
	"github.com/finprep/creditclean/internal/table"
)

// Options tune a single run.
type Options struct {
	// MinLabelFraction overrides the header-detection threshold.
	// Zero means repair.DefaultMinLabelFraction.
	MinLabelFraction float64
}

// Run executes the full repair pipeline on one source. It returns the
// cleaned table together with the run report. Structural and schema
// errors are fatal; value-level anomalies never fail the run and are
// aggregated into the report instead.
//
// The report is returned non-nil even on failure, with the phases
// completed so far.
func Run(ctx context.Context, src io.Reader, spec schema.DatasetSpec, opts Options) (*table.Table, *Report, error) {
	minFraction := opts.MinLabelFraction
	if minFraction == 0 {
		minFraction = repair.DefaultMinLabelFraction
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Dataset: spec.Key,
		Started: time.Now(),
	}

	ctx = logging.WithRunID(ctx, report.RunID)
	log := logging.WithFields(ctx, "dataset", spec.Key)

	fail := func(phase Phase, err error) (*table.Table, *Report, error) {
		report.finish(PhaseFailed)
		report.Error = err.Error()
		log.Error("pipeline failed", "phase", string(phase), "error", err)
		return nil, report, err
	}

	// Load
	stage := report.begin(PhaseLoading)
	t, err := ingest.Load(src)
	if err != nil {
		return fail(PhaseLoading, err)
	}
	stage.done()

	if spec.ColumnCount > 0 && t.NumCols() != spec.ColumnCount {
		return fail(PhaseLoading, &table.MalformedSourceError{
			Row: 0, Got: t.NumCols(), Want: spec.ColumnCount,
		})
	}
	log.Info("source loaded", "rows", t.NumRows(), "columns", t.NumCols())

	if err := ctx.Err(); err != nil {
		return fail(PhaseLoading, err)
	}

	// Excise the stacked header
	stage = report.begin(PhaseExcising)
	labels, err := repair.ExciseHeader(t, minFraction)
	if err != nil {
		return fail(PhaseExcising, err)
	}
	stage.done()
	report.HeaderLabels = labels
	log.Info("label row excised", "labels", len(labels), "rows", t.NumRows())

	// Retype every column with coerce-to-missing semantics
	stage = report.begin(PhaseRetyping)
	diags, err := repair.Retype(t)
	if err != nil {
		return fail(PhaseRetyping, err)
	}
	stage.done()
	report.CoercedToMissing = diags
	if n := diags.Total(); n > 0 {
		log.Warn("retyping coerced values to missing", "count", n)
	} else {
		log.Info("columns retyped", "coerced_to_missing", 0)
	}

	if err := ctx.Err(); err != nil {
		return fail(PhaseRetyping, err)
	}

	// Rename: recovered label composed with the dataset's domain names
	stage = report.begin(PhaseRenaming)
	renames := make(map[string]string, len(labels))
	for current, label := range labels {
		renames[current] = spec.FinalName(label)
	}
	if err := t.RenameColumns(renames); err != nil {
		return fail(PhaseRenaming, err)
	}
	for name, ct := range spec.Types {
		if err := t.SetType(name, ct); err != nil {
			return fail(PhaseRenaming, err)
		}
	}
	stage.done()

	// Relabel coded columns
	stage = report.begin(PhaseLabeling)
	report.UnmappedCodes = make(map[string]map[int]int)
	for _, column := range spec.CategoryColumns() {
		unmapped, err := schema.ApplyCategories(t, column, spec.Categories[column])
		if err != nil {
			return fail(PhaseLabeling, err)
		}
		if len(unmapped) > 0 {
			report.UnmappedCodes[column] = unmapped
			log.Warn("unmapped category codes", "column", column, "codes", len(unmapped))
		}
	}
	stage.done()

	report.finish(PhaseComplete)
	report.Rows = t.NumRows()
	report.Columns = t.NumCols()
	log.Info("pipeline complete",
		"rows", report.Rows,
		"columns", report.Columns,
		"coerced_to_missing", diags.Total(),
		"duration", report.Duration.Round(time.Millisecond),
	)

	return t, report, nil
}

// RunFile is a convenience wrapper around Run for a file path. A
// failure to open the file is a table.ErrSourceUnavailable.
func RunFile(ctx context.Context, path string, spec schema.DatasetSpec, opts Options) (*table.Table, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", table.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return Run(ctx, f, spec, opts)
}
