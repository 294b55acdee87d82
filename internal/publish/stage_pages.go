package publish

import (
	"context"
	"os"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/page"
	"git.home.luguber.info/inful/classydoc/internal/tutorial"
)

// pageKinds lists the container kinds that own a page, in generation order.
var pageKinds = []doclet.Kind{
	doclet.KindModule, doclet.KindClass, doclet.KindNamespace,
	doclet.KindMixin, doclet.KindExternal, doclet.KindInterface,
}

func stagePages(_ context.Context, s *State) error {
	gc := s.GC

	files := shortenSources(gc.Store)
	if gc.Options.OutputSourceFiles {
		if err := buildSourcePages(s, files); err != nil {
			return NewFatalStageError(StagePages, err)
		}
	}

	buildGlobalPage(s)
	if err := buildHomePage(s); err != nil {
		return NewFatalStageError(StagePages, err)
	}
	buildContainerPages(s)
	buildTutorialPages(s)

	gc.Logger.Info("Built pages", logfields.Count(gc.Pages.Len()))
	if err := spliceEntry(s); err != nil {
		return NewWarnStageError(StagePages, err)
	}
	return nil
}

func buildGlobalPage(s *State) {
	gc := s.GC
	global := gc.Store.Detached(&doclet.Doclet{Name: "Global", Kind: doclet.KindGlobalObj})
	if p := gc.Pages.Page(global); len(p.Doclets) == 0 {
		gc.Pages.Remove(global.ID)
	}
}

// buildHomePage assembles the index page from package records, the rendered
// README and file records.
func buildHomePage(s *State) error {
	gc := s.GC
	home := gc.Store.Detached(&doclet.Doclet{Name: "Home", Kind: doclet.KindMainPage})

	children := gc.Store.Ordered(doclet.KindIn(doclet.KindPackage))
	if gc.Options.Readme != "" {
		// #nosec G304 -- the README path is chosen by the operator
		raw, err := os.ReadFile(gc.Options.Readme)
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to read README").
				WithContext("path", gc.Options.Readme).Build()
		}
		body, err := gc.Markdown.Render(raw)
		if err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to render README").
				WithContext("path", gc.Options.Readme).Build()
		}
		children = append(children, gc.Store.Detached(&doclet.Doclet{
			Kind:     doclet.KindReadme,
			Longname: gc.Options.MainPageTitle,
			Readme:   body,
		}))
	}
	children = append(children, gc.Store.Ordered(doclet.KindIn(doclet.KindFile))...)

	s.home = gc.Pages.Page(home, children...)
	return nil
}

// buildContainerPages creates one page per container record. Records whose
// URL is a fragment of another page, or whose file is already claimed, are
// shown on that page instead.
func buildContainerPages(s *State) {
	gc := s.GC
	claimed := make(map[string]bool)
	for _, kind := range pageKinds {
		for _, d := range gc.Store.Ordered(doclet.KindIn(kind)) {
			link := gc.Links.CreateLink(d)
			if strings.Contains(link, "#") || claimed[link] {
				continue
			}
			claimed[link] = true
			gc.Pages.Page(d, gc.Store.Ordered(doclet.MemberOfIs(d.Longname))...)
		}
	}
}

// buildTutorialPages creates a page for every tutorial, parents first.
func buildTutorialPages(s *State) {
	gc := s.GC
	s.Tutorials.Walk(func(t *tutorial.Tutorial) {
		d := gc.Store.Detached(&doclet.Doclet{Name: t.Name, Title: t.Title, Kind: doclet.KindTutorial})
		children := make([]*doclet.Doclet, 0, len(t.Children))
		for _, c := range t.Children {
			children = append(children, gc.Store.Detached(&doclet.Doclet{Name: c.Name, Title: c.Title, Kind: doclet.KindTutorial}))
		}
		p := gc.Pages.Page(d, children...)
		p.Heading = t.Title
		p.Body = t.Content
	})
}

// entryRecord returns the container named as the entry symbol, if any.
func entryRecord(gc *generation.Context) *doclet.Doclet {
	if gc.Options.Entry == "" {
		return nil
	}
	return gc.Store.Find(doclet.LongnameIs(gc.Options.Entry), doclet.Containers)
}

// spliceEntry moves the configured entry symbol's page onto the home page.
// Links to the entry already point at the index; child containers keep their
// own pages.
func spliceEntry(s *State) error {
	gc := s.GC
	if gc.Options.Entry == "" {
		return nil
	}
	d := entryRecord(gc)
	if d == nil {
		return errors.ValidationError("entry symbol not found").
			WithContext("longname", gc.Options.Entry).Warning().Build()
	}

	var children []*doclet.Doclet
	if p, ok := gc.Pages.Get(d.ID); ok {
		for _, sec := range p.Sections() {
			children = append(children, sec.Members...)
		}
		gc.Pages.Remove(d.ID)
	}
	s.home.Entry = d
	gc.Pages.Page(s.home.Doclet, children...)
	gc.Logger.Debug("Spliced entry into home page", logfields.Longname(d.Longname), logfields.Count(len(children)))
	return nil
}

// pageFile is the output file of p, without any fragment.
func pageFile(p *page.Page) string {
	file, _, _ := strings.Cut(p.Link, "#")
	return file
}
