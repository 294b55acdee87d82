package resolve

import (
	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// Constructors moves constructor documentation onto the owning class or interface.
//
// The constructor is the first constructor-hinted record strictly between the
// type's line and the next documented type of the same kind in the file. A
// constructor description that differs from the type's becomes the extended
// description; otherwise the type's own description is promoted to it, unless
// the type already has an explicit class description. The constructor itself
// is hidden and lends its params and properties to the type.
func Constructors(gc *generation.Context) {
	merged := 0
	for _, file := range gc.Store.Files() {
		records := gc.Store.InFile(file)
		for _, kind := range []doclet.Kind{doclet.KindClass, doclet.KindInterface} {
			types := declarations(records, kind)
			for i, t := range types {
				last := -1
				if i+1 < len(types) {
					last = types[i+1].Meta.Line
				}
				ctor := findConstructor(records, t, last)
				mergeConstructor(t, ctor)
				if ctor != nil {
					merged++
					gc.Logger.Debug("Merged constructor", logfields.Longname(t.Longname), logfields.File(file.Filename))
				}
			}
		}
	}
	gc.Logger.Debug("Constructor merge complete", logfields.Count(merged))
}

func declarations(records []*doclet.Doclet, kind doclet.Kind) []*doclet.Doclet {
	var out []*doclet.Doclet
	for _, d := range records {
		if d.Kind == kind && d.Documented() && d.Meta.HasPosition() && d.Meta.Code.Hint != doclet.HintConstructor {
			out = append(out, d)
		}
	}
	return out
}

func findConstructor(records []*doclet.Doclet, t *doclet.Doclet, last int) *doclet.Doclet {
	w := window{c: t, next: last}
	for _, r := range records {
		if r != t && r.Meta.Code.Hint == doclet.HintConstructor && w.holds(r) {
			return r
		}
	}
	return nil
}

func mergeConstructor(t, ctor *doclet.Doclet) {
	var desc string
	if ctor != nil {
		desc = ctor.Description
	}
	switch {
	case desc != "" && desc != t.Description:
		t.ClassDesc = desc
	case t.ClassDesc == "":
		t.ClassDesc = t.Description
		t.Description = ""
	}
	if isTitle(t.Description, t.Title) {
		t.Description = ""
	}

	if ctor == nil {
		return
	}
	ctor.Undocumented = true
	if ctor.ClassDesc != "" {
		t.ClassDesc = ctor.ClassDesc
	}
	if len(t.Params) == 0 {
		t.Params = ctor.Params
	}
	if len(t.Properties) == 0 {
		t.Properties = ctor.Properties
	}
	if t.Kind == doclet.KindInterface {
		t.Virtual = true
	}
}

// isTitle reports whether desc only repeats the record's title.
func isTitle(desc, title string) bool {
	return title != "" && (desc == title || desc == "<p>"+title+"</p>")
}
