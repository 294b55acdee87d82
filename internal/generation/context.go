// Package generation holds the state of one documentation run.
package generation

import (
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/linker"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/markdown"
	"git.home.luguber.info/inful/classydoc/internal/metrics"
	"git.home.luguber.info/inful/classydoc/internal/page"
)

// Options are the behaviour switches a run consumes.
type Options struct {
	// Entry names a symbol whose page is spliced into the home page.
	Entry             string
	MainPageTitle     string
	OutputSourceFiles bool
	UseLongnameInNav  bool
	IncludePrivate    bool
	Encoding          string
	Input             []string
	Destination       string
	TemplateDir       string
	Readme            string
	Tutorials         string
	SearchIndex       string
}

// Context is the state shared by every stage of a single run. It is never reused.
type Context struct {
	RunID    string
	Store    *doclet.Store
	Punct    doclet.Punctuation
	Links    *linker.Registry
	Pages    *page.Registry
	Markdown *markdown.Renderer
	Options  Options
	Logger   *slog.Logger
	Recorder metrics.Recorder

	// SourceLink, when set, maps a record to a URL on the hosting service.
	SourceLink func(d *doclet.Doclet) string
}

// Option customises a new Context.
type Option func(*Context)

// WithLogger sets the logger; the run id is attached to every record.
func WithLogger(l *slog.Logger) Option { return func(c *Context) { c.Logger = l } }

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option { return func(c *Context) { c.Recorder = r } }

// WithPunctuation overrides the scope separators.
func WithPunctuation(p doclet.Punctuation) Option { return func(c *Context) { c.Punct = p } }

// WithSourceLink sets the hosting-service link builder.
func WithSourceLink(fn func(d *doclet.Doclet) string) Option {
	return func(c *Context) { c.SourceLink = fn }
}

// UseStore replaces the record store, discarding any pages built over the old one.
func (c *Context) UseStore(store *doclet.Store) {
	c.Store = store
	c.Pages = page.NewRegistry(store, c.Links)
}

// New returns a fresh context over store.
func New(store *doclet.Store, opts Options, options ...Option) *Context {
	c := &Context{
		RunID:    uuid.NewString(),
		Store:    store,
		Punct:    doclet.DefaultPunctuation(),
		Markdown: markdown.New(),
		Options:  opts,
		Logger:   slog.Default(),
		Recorder: metrics.NoopRecorder{},
	}
	for _, o := range options {
		o(c)
	}
	if c.Options.MainPageTitle == "" {
		c.Options.MainPageTitle = "Main Page"
	}
	if c.Options.Encoding == "" {
		c.Options.Encoding = "utf8"
	}
	c.Logger = c.Logger.With(logfields.RunID(c.RunID))
	c.Links = linker.New(c.Punct)
	c.Pages = page.NewRegistry(store, c.Links)
	return c
}
