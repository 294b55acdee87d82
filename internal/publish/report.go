package publish

import (
	"time"
)

// Report summarizes a run.
type Report struct {
	RunID          string
	Start          time.Time
	End            time.Time
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]StageResult
	Warnings       []error
	// Written lists output files relative to the destination, in write order.
	Written []string
	Outcome string
}

func newReport(runID string) *Report {
	return &Report{
		RunID:          runID,
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]StageResult),
	}
}

// Duration returns the wall time of the run.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

func (r *Report) finish(err error) {
	r.End = time.Now()
	switch {
	case err != nil:
		r.Outcome = "failed"
	case len(r.Warnings) > 0:
		r.Outcome = "warning"
	default:
		r.Outcome = "success"
	}
}
