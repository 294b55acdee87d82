// Package signature derives display signatures and attribute strings for records.
//
// Every function here recomputes its output from the record alone, so applying
// it more than once yields the same strings.
package signature

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/linker"
)

// Apply sets Signature and Attribs on every record that needs them.
func Apply(store *doclet.Store, links *linker.Registry) {
	for _, d := range store.Ordered() {
		Synthesize(d, links)
	}
}

// Synthesize sets Signature and Attribs on d.
func Synthesize(d *doclet.Doclet, links *linker.Registry) {
	switch {
	case NeedsSignature(d):
		d.Signature = call(d, links)
		d.Attribs = attribsSpan(Attribs(d))
	case NeedsTypes(d):
		d.Signature = types(d, links)
		d.Attribs = attribsSpan(Attribs(d))
	}
}

// NeedsSignature reports records shown with a call signature.
func NeedsSignature(d *doclet.Doclet) bool {
	switch d.Kind {
	case doclet.KindFunction, doclet.KindClass, doclet.KindInterface:
		return true
	case doclet.KindTypedef:
		return d.HasTypeName("function")
	case doclet.KindNamespace:
		return d.Meta.Code.Callable
	}
	return false
}

// NeedsTypes reports records shown with a type annotation.
func NeedsTypes(d *doclet.Doclet) bool {
	return d.Kind == doclet.KindMember || d.Kind == doclet.KindConstant
}

// Attribs lists the decorations of d in display order.
func Attribs(d *doclet.Doclet) []string {
	var attribs []string
	if d.Async {
		attribs = append(attribs, "async")
	}
	if d.Generator {
		attribs = append(attribs, "generator")
	}
	if d.Virtual {
		attribs = append(attribs, "abstract")
	}
	if d.Access != "" && d.Access != "public" {
		attribs = append(attribs, d.Access)
	}
	if d.Scope != "" && d.Scope != doclet.ScopeInstance && d.Scope != doclet.ScopeGlobal {
		switch d.Kind {
		case doclet.KindFunction, doclet.KindMember, doclet.KindConstant:
			attribs = append(attribs, string(d.Scope))
		}
	}
	if d.Readonly && d.Kind == doclet.KindMember {
		attribs = append(attribs, "readonly")
	}
	if d.Kind == doclet.KindConstant {
		attribs = append(attribs, "constant")
	}
	attribs = append(attribs, nullability(d.Nullable)...)
	if d.Optional {
		attribs = append(attribs, "opt")
	}
	return attribs
}

func nullability(n *bool) []string {
	switch {
	case n == nil:
		return nil
	case *n:
		return []string{"nullable"}
	default:
		return []string{"non-null"}
	}
}

func params(d *doclet.Doclet) string {
	var items []string
	for _, p := range d.Params {
		if p.Name == "" || strings.Contains(p.Name, ".") {
			continue
		}
		items = append(items, paramName(p))
	}
	return "(" + strings.Join(items, ", ") + ")"
}

func paramName(p doclet.Param) string {
	name := linker.HTMLSafe(p.Name)
	if p.Variable {
		name = "&hellip;" + name
	}
	var attrs []string
	if p.Optional {
		attrs = append(attrs, "opt")
	}
	attrs = append(attrs, nullability(p.Nullable)...)
	if len(attrs) > 0 {
		name += `<span class="signature-attributes">` + strings.Join(attrs, ", ") + `</span>`
	}
	return name
}

// call renders the parameter list followed by the return types.
func call(d *doclet.Doclet, links *linker.Registry) string {
	source := d.Yields
	if len(source) == 0 {
		source = d.Returns
	}
	var attribs, typeStrings []string
	for _, r := range source {
		for _, a := range nullability(r.Nullable) {
			if !slices.Contains(attribs, a) {
				attribs = append(attribs, a)
			}
		}
		typeStrings = append(typeStrings, strings.Join(linkTypes(r.Type, links), "|"))
	}
	var ret string
	if len(typeStrings) > 0 {
		ret = fmt.Sprintf(" &rarr; %s{%s}", attribsString(attribs), strings.Join(typeStrings, "|"))
	}
	return `<span class="signature">` + params(d) + `</span><span class="type-signature">` + ret + `</span>`
}

func types(d *doclet.Doclet, links *linker.Registry) string {
	var ts string
	if names := linkTypes(d.Type, links); len(names) > 0 {
		ts = " :" + strings.Join(names, "|")
	}
	return `<span class="type-signature">` + ts + `</span>`
}

func linkTypes(t *doclet.TypeNames, links *linker.Registry) []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.Names))
	for _, n := range t.Names {
		out = append(out, links.LinkType(n))
	}
	return out
}

func attribsString(attribs []string) string {
	if len(attribs) == 0 {
		return ""
	}
	return linker.HTMLSafe("(" + strings.Join(attribs, ", ") + ") ")
}

func attribsSpan(attribs []string) string {
	return `<span class="type-signature">` + attribsString(attribs) + `</span>`
}
