package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// stageOutcome is the normalized result of one stage execution.
type stageOutcome struct {
	Error  *StageError
	Result StageResult
	Abort  bool
}

func classifyStageResult(stage StageName, err error) stageOutcome {
	if err == nil {
		return stageOutcome{Result: StageResultSuccess}
	}
	var se *StageError
	if !errors.As(err, &se) {
		se = NewFatalStageError(stage, err)
	}
	switch se.Kind {
	case StageErrorWarning:
		return stageOutcome{Error: se, Result: StageResultWarning}
	case StageErrorCanceled:
		return stageOutcome{Error: se, Result: StageResultCanceled, Abort: true}
	default:
		return stageOutcome{Error: se, Result: StageResultFatal, Abort: true}
	}
}

// RunStages executes stages in order, recording timing and stopping on the
// first fatal error.
func RunStages(ctx context.Context, s *State, stages []StageDef) error {
	rec := s.GC.Recorder
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := NewCanceledStageError(st.Name, ctx.Err())
			s.Report.StageResults[st.Name] = StageResultCanceled
			rec.IncStageResult(string(st.Name), StageResultCanceled.label())
			return se
		default:
		}

		logger := s.GC.Logger.With(logfields.Stage(string(st.Name)))
		t0 := time.Now()
		err := st.Fn(ctx, s)
		dur := time.Since(t0)

		s.Report.StageDurations[st.Name] = dur
		rec.ObserveStageDuration(string(st.Name), dur)

		out := classifyStageResult(st.Name, err)
		s.Report.StageResults[st.Name] = out.Result
		rec.IncStageResult(string(st.Name), out.Result.label())

		if out.Error != nil && !out.Abort {
			s.Report.Warnings = append(s.Report.Warnings, out.Error)
			logger.Warn("Stage completed with warnings", logfields.Error(out.Error))
		} else {
			logger.Debug("Stage complete", logfields.DurationMS(float64(dur.Microseconds())/1000))
		}

		if out.Abort {
			if out.Error != nil {
				return out.Error
			}
			return fmt.Errorf("stage %s aborted", st.Name)
		}
	}
	return nil
}

// Run executes the default pipeline against a fresh state built over gc.
func Run(ctx context.Context, s *State) (*Report, error) {
	err := RunStages(ctx, s, DefaultPipeline(s).Build())
	s.Report.finish(err)
	s.GC.Recorder.ObserveRunDuration(s.Report.Duration())
	outcome := "success"
	if err != nil {
		outcome = "failed"
	}
	s.GC.Recorder.IncRunOutcome(outcome)
	if err == nil {
		s.GC.Logger.Info("Documentation generated",
			logfields.Count(len(s.Report.Written)),
			logfields.Path(s.GC.Options.Destination),
			logfields.DurationMS(float64(s.Report.Duration().Microseconds())/1000))
	}
	return s.Report, err
}
