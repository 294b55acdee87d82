package publish

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/classydoc/internal/metrics"
)

// Stage is a discrete unit of work in a documentation run.
type Stage func(ctx context.Context, s *State) error

// StageName is a strongly-typed identifier for a run stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageLoad         StageName = "load"
	StageDefaults     StageName = "defaults"
	StageContainment  StageName = "containment"
	StageConstructors StageName = "constructors"
	StagePrune        StageName = "prune"
	StageLinks        StageName = "links"
	StageInheritance  StageName = "inheritance"
	StageSignatures   StageName = "signatures"
	StagePages        StageName = "pages"
	StageNavigation   StageName = "navigation"
	StageRender       StageName = "render"
	StageIndex        StageName = "index"
)

// StageErrorKind classifies the outcome of a stage.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Run must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError carries the stage and kind alongside the underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// StageResult captures the high-level outcome of a stage.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultWarning  StageResult = "warning"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

// label maps a result onto the metrics counter label.
func (r StageResult) label() metrics.ResultLabel {
	switch r {
	case StageResultSuccess:
		return metrics.ResultSuccess
	case StageResultWarning:
		return metrics.ResultWarning
	default:
		return metrics.ResultFatal
	}
}

func NewFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func NewWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func NewCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// Pipeline is a fluent builder for ordered stage definitions.
type Pipeline struct{ Defs []StageDef }

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline { return &Pipeline{Defs: make([]StageDef, 0, 12)} }

// Add appends a stage unconditionally.
func (p *Pipeline) Add(name StageName, fn Stage) *Pipeline {
	p.Defs = append(p.Defs, StageDef{Name: name, Fn: fn})
	return p
}

// AddIf appends a stage only if cond is true.
func (p *Pipeline) AddIf(cond bool, name StageName, fn Stage) *Pipeline {
	if cond {
		p.Add(name, fn)
	}
	return p
}

// Build returns a copy of the stage definitions.
func (p *Pipeline) Build() []StageDef {
	out := make([]StageDef, len(p.Defs))
	copy(out, p.Defs)
	return out
}

// DefaultPipeline returns the full stage sequence for the context's options.
func DefaultPipeline(s *State) *Pipeline {
	return NewPipeline().
		Add(StageLoad, stageLoad).
		Add(StageDefaults, stageDefaults).
		Add(StageContainment, stageContainment).
		Add(StageConstructors, stageConstructors).
		Add(StagePrune, stagePrune).
		Add(StageLinks, stageLinks).
		Add(StageInheritance, stageInheritance).
		Add(StageSignatures, stageSignatures).
		Add(StagePages, stagePages).
		Add(StageNavigation, stageNavigation).
		Add(StageRender, stageRender).
		AddIf(s.GC.Options.SearchIndex != "", StageIndex, stageIndex)
}
