package pipeline

import (
	"time"

	"github.com/finprep/creditclean/internal/repair"
)

// Phase names one stage of a run. Phases appear in stage timings and in
// failure reports.
type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseExcising Phase = "excising"
	PhaseRetyping Phase = "retyping"
	PhaseRenaming Phase = "renaming"
	PhaseLabeling Phase = "labeling"
	PhaseComplete Phase = "complete"
	PhaseFailed   Phase = "failed"
)

// StageTiming records how long one stage took.
type StageTiming struct {
	Phase    Phase
	Duration time.Duration
}

// Report is the run diagnostic surface: identifiers, stage timings, and
// the aggregated value-level anomalies that are deliberately not errors.
type Report struct {
	RunID   string
	Dataset string

	Started  time.Time
	Duration time.Duration
	Phase    Phase
	Stages   []StageTiming

	// Rows and Columns describe the cleaned table on success.
	Rows    int
	Columns int

	// HeaderLabels is the rename candidate map recovered from the
	// excised label row (positional name to label).
	HeaderLabels map[string]string

	// CoercedToMissing counts, per column, values the retyper turned
	// into the missing marker. Zero for the canonical dataset.
	CoercedToMissing repair.Diagnostics

	// UnmappedCodes counts, per labeled column and per code, the codes
	// observed in the data with no entry in the category mapping.
	UnmappedCodes map[string]map[int]int

	// Error is non-empty when Phase is PhaseFailed.
	Error string
}

type runningStage struct {
	report *Report
	phase  Phase
	start  time.Time
}

func (r *Report) begin(p Phase) *runningStage {
	r.Phase = p
	return &runningStage{report: r, phase: p, start: time.Now()}
}

func (s *runningStage) done() {
	s.report.Stages = append(s.report.Stages, StageTiming{
		Phase:    s.phase,
		Duration: time.Since(s.start),
	})
}

func (r *Report) finish(p Phase) {
	r.Phase = p
	r.Duration = time.Since(r.Started)
}

// UnmappedTotal returns the total count of unmapped category codes
// across all labeled columns.
func (r *Report) UnmappedTotal() int {
	n := 0
	for _, codes := range r.UnmappedCodes {
		for _, c := range codes {
			n += c
		}
	}
	return n
}
