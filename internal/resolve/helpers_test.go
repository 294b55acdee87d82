package resolve

import (
	"io"
	"log/slog"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/generation"
)

func newContext(records ...*doclet.Doclet) *generation.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return generation.New(doclet.NewStore(records...), generation.Options{}, generation.WithLogger(logger))
}

// at positions a record in file "src/a.js". A zero-width range omits the range.
func at(d *doclet.Doclet, line, start, end int) *doclet.Doclet {
	d.Meta.Path = "src"
	d.Meta.Filename = "a.js"
	d.Meta.Line = line
	if end > start {
		d.Meta.Range = &[2]int{start, end}
	}
	if d.Longname == "" {
		d.Longname = d.Name
	}
	return d
}

func hinted(d *doclet.Doclet, h doclet.NodeHint) *doclet.Doclet {
	d.Meta.Code.Hint = h
	return d
}
