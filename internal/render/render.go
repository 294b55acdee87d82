// Package render turns pages into HTML using Go templates.
//
// Record fields such as descriptions and signatures already hold HTML and are
// emitted verbatim; plain names pass through the built-in html function.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/linker"
	"git.home.luguber.info/inful/classydoc/internal/page"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Renderer renders named templates.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// View is the data every page template receives.
type View struct {
	Page     *page.Page
	Nav      string
	TOC      string
	Encoding string
}

// Options configures a Templates set.
type Options struct {
	// Dir holds *.tmpl files whose definitions replace the embedded ones.
	Dir string
	// OutputSourceFiles links source positions to generated source pages.
	OutputSourceFiles bool
}

// Templates is the default Renderer backed by text/template.
type Templates struct {
	set *template.Template
}

// New parses the embedded templates, then any overrides from opts.Dir.
func New(links *linker.Registry, opts Options) (*Templates, error) {
	set := template.New("classydoc").Funcs(funcs(links, opts)).Option("missingkey=error")
	set, err := set.ParseFS(embeddedTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to parse embedded templates").Build()
	}
	if opts.Dir == "" {
		return &Templates{set: set}, nil
	}

	overrides, err := filepath.Glob(filepath.Join(opts.Dir, "*.tmpl"))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid template directory").
			WithContext("path", opts.Dir).Build()
	}
	for _, path := range overrides {
		// #nosec G304 -- path comes from globbing the configured template directory
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read template").
				WithContext("path", path).Build()
		}
		if _, err := set.Parse(string(raw)); err != nil {
			return nil, errors.WrapError(err, errors.CategoryRender, "failed to parse template").
				WithContext("path", path).Build()
		}
	}
	return &Templates{set: set}, nil
}

// Render executes the named template with data.
func (t *Templates) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.set.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to render template").
			WithContext("template", name).Build()
	}
	return buf.Bytes(), nil
}

// TemplateFor returns the template that renders pages of kind k.
func TemplateFor(k doclet.Kind) string {
	switch k {
	case doclet.KindSource:
		return "source"
	case doclet.KindTutorial:
		return "tutorial"
	}
	return "container"
}

func funcs(links *linker.Registry, opts Options) template.FuncMap {
	return template.FuncMap{
		"linkto": links.Linkto,
		"linktypes": func(t *doclet.TypeNames) string {
			if t == nil {
				return ""
			}
			out := make([]string, 0, len(t.Names))
			for _, n := range t.Names {
				out = append(out, links.LinkType(n))
			}
			return strings.Join(out, " | ")
		},
		"tutoriallink": func(name string) string { return links.TutorialLink(name, "") },
		"sourcelink": func(d *doclet.Doclet) string {
			label := fmt.Sprintf("%s, line %d", linker.HTMLSafe(d.Meta.ShortPath), d.Meta.Line)
			if !opts.OutputSourceFiles {
				return label
			}
			u, ok := links.URL(d.Meta.ShortPath)
			if !ok {
				return label
			}
			return fmt.Sprintf(`<a href="%s#line%d">%s</a>`, u, d.Meta.Line, label)
		},
	}
}
