package publish

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/classydoc/internal/jsdocx"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/resolve"
	"git.home.luguber.info/inful/classydoc/internal/signature"
	"git.home.luguber.info/inful/classydoc/internal/tutorial"
)

func stageLoad(_ context.Context, s *State) error {
	gc := s.GC
	store, err := jsdocx.LoadFiles(gc.Options.Input, jsdocx.Options{Markdown: gc.Markdown, Logger: gc.Logger})
	if err != nil {
		return NewFatalStageError(StageLoad, err)
	}
	gc.UseStore(store)
	gc.Recorder.SetRecords(store.Len())

	if gc.Options.Tutorials != "" {
		tree, err := tutorial.Load(gc.Options.Tutorials, gc.Markdown, gc.Logger)
		if err != nil {
			return NewFatalStageError(StageLoad, err)
		}
		s.Tutorials = tree
	}
	gc.Logger.Info("Loaded doclets", logfields.Count(store.Len()), slog.Int("inputs", len(gc.Options.Input)))
	return nil
}

func stageDefaults(_ context.Context, s *State) error {
	resolve.Defaults(s.GC)
	return nil
}

func stageContainment(_ context.Context, s *State) error {
	resolve.Containment(s.GC)
	return nil
}

func stageConstructors(_ context.Context, s *State) error {
	resolve.Constructors(s.GC)
	return nil
}

func stagePrune(_ context.Context, s *State) error {
	resolve.Prune(s.GC)
	resolve.ModuleSymbols(s.GC)
	return nil
}

// stageLinks registers record URLs and claims tutorial file names so inline
// {@tutorial} references resolve on every page. The entry symbol is bound to
// the home page first, so its members, signatures and breadcrumbs link there.
func stageLinks(_ context.Context, s *State) error {
	if d := entryRecord(s.GC); d != nil {
		s.GC.Links.Register(d.Longname, s.GC.Links.IndexURL())
	}
	resolve.Links(s.GC)
	s.Tutorials.Walk(func(t *tutorial.Tutorial) {
		s.GC.Links.RegisterTutorial(t.Name, t.Title)
	})
	return nil
}

func stageInheritance(_ context.Context, s *State) error {
	resolve.Inheritance(s.GC)
	return nil
}

func stageSignatures(_ context.Context, s *State) error {
	signature.Apply(s.GC.Store, s.GC.Links)
	return nil
}
