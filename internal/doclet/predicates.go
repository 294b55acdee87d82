package doclet

import "slices"

// KindIn matches records of any of the given kinds.
func KindIn(kinds ...Kind) Predicate {
	return func(d *Doclet) bool { return slices.Contains(kinds, d.Kind) }
}

// LongnameIs matches records with the given longname.
func LongnameIs(longname string) Predicate {
	return func(d *Doclet) bool { return d.Longname == longname }
}

// MemberOfIs matches records owned by the given longname ("" for top-level records).
func MemberOfIs(longname string) Predicate {
	return func(d *Doclet) bool { return d.MemberOf == longname }
}

// ScopeIs matches records in the given scope.
func ScopeIs(scope Scope) Predicate {
	return func(d *Doclet) bool { return d.Scope == scope }
}

// Documented matches records that appear in generated output.
func Documented(d *Doclet) bool { return d.Documented() }

// Containers matches container-kind records.
func Containers(d *Doclet) bool { return d.Kind.IsContainer() }

// InFile matches records positioned in file.
func InFile(file FileKey) Predicate {
	return func(d *Doclet) bool { return d.Meta.Filename != "" && d.Meta.File() == file }
}

// LinesBetween matches records whose line lies strictly between from and to.
// A negative to means unbounded.
func LinesBetween(from, to int) Predicate {
	return func(d *Doclet) bool {
		return d.Meta.Line > from && (to < 0 || d.Meta.Line < to)
	}
}

// And matches records satisfying every predicate.
func And(preds ...Predicate) Predicate {
	return func(d *Doclet) bool { return matches(d, preds) }
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(d *Doclet) bool { return !p(d) }
}
