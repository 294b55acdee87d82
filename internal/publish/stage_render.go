package publish

import (
	"context"

	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/nav"
	"git.home.luguber.info/inful/classydoc/internal/render"
)

func stageNavigation(_ context.Context, s *State) error {
	gc := s.GC
	s.nav = nav.Build(gc.Store, gc.Links, nav.Options{
		UseLongnameInNav: gc.Options.UseLongnameInNav,
		Tutorials:        s.Tutorials.Names(),
	})
	for _, p := range gc.Pages.All() {
		p.Nav = s.nav.HTML(p.Link)
		p.TOC = nav.TOC(p)
	}
	return nil
}

// stageRender renders every page once and writes it under the destination.
func stageRender(ctx context.Context, s *State) error {
	gc := s.GC
	if s.Renderer == nil {
		r, err := render.New(gc.Links, render.Options{
			Dir:               gc.Options.TemplateDir,
			OutputSourceFiles: gc.Options.OutputSourceFiles,
		})
		if err != nil {
			return NewFatalStageError(StageRender, err)
		}
		s.Renderer = r
	}

	written := make(map[string]bool, gc.Pages.Len())
	for _, p := range gc.Pages.All() {
		if err := ctx.Err(); err != nil {
			return NewCanceledStageError(StageRender, err)
		}
		file := pageFile(p)
		if written[file] {
			return NewFatalStageError(StageRender, errors.InternalError("two pages share an output file").
				WithContext("path", file).Build())
		}

		out, err := s.Renderer.Render(render.TemplateFor(p.Kind), render.View{
			Page:     p,
			Nav:      p.Nav,
			TOC:      nav.TOCHTML(p.TOC),
			Encoding: gc.Options.Encoding,
		})
		if err != nil {
			return NewFatalStageError(StageRender, errors.WrapError(err, errors.CategoryRender, "failed to render page").
				WithContext("page", file).Build())
		}
		html := string(out)
		if p.ResolveLinks {
			html = gc.Links.ResolveLinks(html)
		}
		if _, err := WriteFile(gc.Options.Destination, file, []byte(html)); err != nil {
			return NewFatalStageError(StageRender, err)
		}

		written[file] = true
		s.Report.Written = append(s.Report.Written, file)
		gc.Recorder.IncPages(string(p.Kind))
		gc.Logger.Debug("Wrote page", logfields.Page(file), logfields.Kind(string(p.Kind)))
	}
	return nil
}
