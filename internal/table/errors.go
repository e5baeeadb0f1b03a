package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal failure classes of the repair pipeline.
// Structural and schema-level problems are fatal and reported
// immediately; value-level anomalies are never errors and are aggregated
// into diagnostics instead.
var (
	// ErrSourceUnavailable wraps I/O failures opening or reading a source.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedSource marks a structural mismatch, such as a row whose
	// column count differs from the header's.
	ErrMalformedSource = errors.New("malformed source")

	// ErrNoHeaderRow is returned when header detection does not fire:
	// row 0 does not look like a label row and the pipeline refuses to
	// guess.
	ErrNoHeaderRow = errors.New("no header row found")

	// ErrUnknownColumn marks configuration/schema drift: a configured
	// column name does not exist in the table. Always fatal.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrHeaderExcised is returned when header excision is invoked a
	// second time on the same table.
	ErrHeaderExcised = errors.New("header already excised")
)

// MalformedSourceError carries the location of a structural mismatch.
type MalformedSourceError struct {
	Row  int // zero-based physical row index
	Got  int
	Want int
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source: row %d has %d columns, expected %d", e.Row, e.Got, e.Want)
}

func (e *MalformedSourceError) Unwrap() error { return ErrMalformedSource }

// UnknownColumnError names the offending column for schema-drift errors.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

func (e *UnknownColumnError) Unwrap() error { return ErrUnknownColumn }

// NoHeaderRowError reports why the header heuristic did not fire.
type NoHeaderRowError struct {
	LabelFraction float64 // fraction of row-0 cells that look like labels
	MinFraction   float64 // configured threshold
}

func (e *NoHeaderRowError) Error() string {
	return fmt.Sprintf("no header row found: %.2f of row 0 cells are labels, need at least %.2f",
		e.LabelFraction, e.MinFraction)
}

func (e *NoHeaderRowError) Unwrap() error { return ErrNoHeaderRow }
