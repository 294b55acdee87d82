package resolve

import (
	"slices"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/util/sets"
)

// Inheritance fills undocumented fields from the first inheritance candidate of
// each record and computes breadcrumb links.
//
// Candidates are the record's own augments, implements and overrides in that
// order, followed by those mirrored from its parent: Foo#bar whose class
// augments Base gains the candidate Base#bar after its own. Authored
// documentation always wins.
func Inheritance(gc *generation.Context) {
	r := &inheritor{
		gc:       gc,
		done:     sets.New[doclet.ID](),
		visiting: sets.New[doclet.ID](),
	}
	for _, d := range gc.Store.Ordered() {
		r.resolve(d)
	}
	gc.Logger.Debug("Resolved inheritance", logfields.Count(r.inherited))

	for _, d := range gc.Store.Ordered() {
		d.Ancestors = gc.Links.AncestorLinks(ancestors(gc.Store, d), d)
	}
}

type inheritor struct {
	gc        *generation.Context
	done      sets.Set[doclet.ID]
	visiting  sets.Set[doclet.ID]
	inherited int
}

func (r *inheritor) resolve(d *doclet.Doclet) {
	if r.done.Has(d.ID) || r.visiting.Has(d.ID) {
		return
	}
	r.visiting.Add(d.ID)
	defer func() {
		r.visiting.Delete(d.ID)
		r.done.Add(d.ID)
	}()

	var candidates sets.Ordered[string]
	candidates.AddAll(d.Augments...)
	candidates.AddAll(d.Implements...)
	candidates.AddAll(d.Overrides...)
	if !d.Kind.IsContainer() {
		candidates.AddAll(r.mirrorParent(d)...)
	}
	if candidates.Len() == 0 {
		return
	}

	target := candidates.Values()[0]
	src := r.lookup(d, target)
	if src == nil {
		r.gc.Logger.Debug("No inheritance source", logfields.Longname(d.Longname), logfields.Target(target))
		return
	}
	r.resolve(src)
	inherit(d, src)
	d.InheritedFrom = src.Longname
	r.inherited++
}

// mirrorParent appends parent-derived candidates to the matching relationship
// list and returns them in augments, implements, overrides order.
func (r *inheritor) mirrorParent(d *doclet.Doclet) []string {
	p := r.gc.Store.Parent(d)
	if p == nil {
		return nil
	}
	var added []string
	mirror := func(from []string, to *[]string) {
		for _, target := range from {
			cand := r.gc.Punct.Join(target, d.Scope, d.Name)
			if !slices.Contains(*to, cand) {
				*to = append(*to, cand)
				added = append(added, cand)
			}
		}
	}
	mirror(p.Augments, &d.Augments)
	mirror(p.Implements, &d.Implements)
	mirror(p.Overrides, &d.Overrides)
	return added
}

func (r *inheritor) lookup(d *doclet.Doclet, target string) *doclet.Doclet {
	notSelf := func(x *doclet.Doclet) bool { return x != d }
	preds := []doclet.Predicate{doclet.LongnameIs(target), doclet.KindIn(d.Kind), notSelf}
	if !d.Kind.IsContainer() {
		preds = append(preds, doclet.ScopeIs(d.Scope))
	}
	if src := r.gc.Store.Find(preds...); src != nil {
		return src
	}
	if !d.Kind.IsMemberLike() {
		return nil
	}
	return r.gc.Store.Find(notSelf, func(x *doclet.Doclet) bool {
		return x.Longname == target || (x.Alias != "" && x.Alias == target)
	})
}

func inherit(d, src *doclet.Doclet) {
	if d.Description == "" {
		d.Description = src.Description
	}
	if len(d.Examples) == 0 {
		d.Examples = slices.Clone(src.Examples)
	}
	if len(d.See) == 0 {
		d.See = slices.Clone(src.See)
	}
	if len(d.Params) == 0 {
		d.Params = slices.Clone(src.Params)
	}
	if len(d.Properties) == 0 {
		d.Properties = slices.Clone(src.Properties)
	}
	if d.Type == nil || len(d.Type.Names) == 0 {
		d.Type = src.Type
	}
	if len(d.Returns) == 0 {
		d.Returns = slices.Clone(src.Returns)
	}
}

// ancestors returns d's containers, outermost first.
func ancestors(store *doclet.Store, d *doclet.Doclet) []*doclet.Doclet {
	var chain []*doclet.Doclet
	seen := sets.New(d.ID)
	for p := store.Parent(d); p != nil && !seen.Has(p.ID); p = store.Parent(p) {
		seen.Add(p.ID)
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	return chain
}
