package resolve

import (
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// window is the half-open line interval (start, next) a container may claim.
// next < 0 means the window runs to the end of the file.
type window struct {
	c    *doclet.Doclet
	next int
}

func (w window) holds(r *doclet.Doclet) bool {
	line := r.Meta.Line
	if line <= w.c.Meta.Line || (w.next >= 0 && line >= w.next) {
		return false
	}
	return r.Meta.Within(w.c.Meta)
}

// Containment assigns ownerless records to the container lexically enclosing
// them. A record is claimed by the innermost container whose window holds its
// line (and, when both carry character ranges, whose range holds its range).
// Containers left without members are marked undocumented afterwards, since
// they were most likely wrappers rather than real containers.
func Containment(gc *generation.Context) {
	claimed := 0
	for _, file := range gc.Store.Files() {
		claimed += containFile(gc, file)
	}
	gc.Logger.Debug("Resolved containment", logfields.Count(claimed))
}

func containFile(gc *generation.Context, file doclet.FileKey) int {
	records := gc.Store.InFile(file)
	windows := containerWindows(records)
	if len(windows) == 0 {
		return 0
	}

	claims := make(map[doclet.ID][]*doclet.Doclet, len(windows))
	claimed := 0
	for _, r := range records {
		if !claimable(r) {
			continue
		}
		var owner *doclet.Doclet
		for _, w := range windows {
			// Windows are in line order, so a later hit is nested deeper.
			if w.c != r && w.holds(r) {
				owner = w.c
			}
		}
		if owner != nil {
			claims[owner.ID] = append(claims[owner.ID], r)
			claimed++
		}
	}

	// Outer containers start first and are renamed before their own members are.
	for _, w := range windows {
		for _, r := range claims[w.c.ID] {
			assign(gc, w.c, r)
		}
	}

	for _, w := range windows {
		c := w.c
		if gc.Store.Find(doclet.MemberOfIs(c.Longname)) != nil {
			continue
		}
		c.Undocumented = true
		gc.Logger.Debug("Dropping empty container", logfields.Longname(c.Longname), logfields.File(file.Filename))
	}
	return claimed
}

// containerWindows computes each positioned container's window. The next
// container that is not range-nested inside C closes C's window.
func containerWindows(records []*doclet.Doclet) []window {
	var containers []*doclet.Doclet
	for _, d := range records {
		if d.Kind.IsContainer() && d.Meta.HasPosition() && d.Meta.Code.Hint != doclet.HintConstructor {
			containers = append(containers, d)
		}
	}
	windows := make([]window, len(containers))
	for i, c := range containers {
		next := -1
		for _, o := range containers[i+1:] {
			if o.Meta.Line <= c.Meta.Line || nested(o, c) {
				continue
			}
			next = o.Meta.Line
			break
		}
		windows[i] = window{c: c, next: next}
	}
	return windows
}

func nested(inner, outer *doclet.Doclet) bool {
	return inner.Meta.Range != nil && outer.Meta.Range != nil && inner.Meta.Within(outer.Meta)
}

func claimable(r *doclet.Doclet) bool {
	if r.MemberOf != "" || r.Kind.IsSynthetic() || !r.Meta.HasPosition() {
		return false
	}
	switch r.Scope {
	case "", doclet.ScopeGlobal, doclet.ScopeInner:
		return true
	}
	return false
}

func assign(gc *generation.Context, c, r *doclet.Doclet) {
	scope := r.Scope
	switch r.Meta.Code.Hint {
	case doclet.HintStaticMember:
		scope = doclet.ScopeStatic
	case doclet.HintInstanceMember, doclet.HintConstructor:
		scope = doclet.ScopeInstance
	default:
		if scope == "" || scope == doclet.ScopeGlobal {
			scope = doclet.ScopeInner
		}
	}

	old := r.Longname
	r.Scope = scope
	r.MemberOf = c.Longname
	r.Longname = gc.Punct.Join(c.Longname, scope, r.Name)

	// A constructor shares its class's longname but owns nothing.
	if r.Kind.IsContainer() && r.Meta.Code.Hint != doclet.HintConstructor && old != "" && old != r.Longname {
		rehome(gc, r, old, map[string]bool{r.Longname: true})
	}
}

// rehome moves records that named a renamed container as their owner. seen
// holds the longnames already produced so a cycle cannot recurse forever.
func rehome(gc *generation.Context, moved *doclet.Doclet, old string, seen map[string]bool) {
	renamed := moved.Longname
	for _, d := range gc.Store.InFile(moved.Meta.File(), doclet.MemberOfIs(old)) {
		if d == moved || d.Meta.Code.Hint == doclet.HintConstructor {
			continue
		}
		prev := d.Longname
		d.MemberOf = renamed
		if strings.HasPrefix(prev, old) {
			d.Longname = renamed + strings.TrimPrefix(prev, old)
		}
		if d.Kind.IsContainer() && prev != d.Longname && !seen[d.Longname] {
			seen[d.Longname] = true
			rehome(gc, d, prev, seen)
		}
	}
}
