package doclet

import (
	"cmp"
	"slices"
)

// Predicate selects records from a Store.
type Predicate func(*Doclet) bool

// Store is an arena of records indexed by ID.
//
// Records added with Add are queryable. Records created with Detached receive an ID
// from the same sequence (so page identity can key on it) but never match a query.
type Store struct {
	records []*Doclet
	nextID  ID
}

// NewStore returns a store holding the given records in order.
func NewStore(records ...*Doclet) *Store {
	s := &Store{}
	for _, d := range records {
		s.Add(d)
	}
	return s
}

// Add assigns d the next ID and appends it to the queryable table.
func (s *Store) Add(d *Doclet) *Doclet {
	d.ID = s.nextID
	s.nextID++
	s.records = append(s.records, d)
	return d
}

// Detached assigns d an ID without making it queryable.
func (s *Store) Detached(d *Doclet) *Doclet {
	d.ID = s.nextID
	s.nextID++
	return d
}

// Get returns the queryable record with the given ID, or nil.
func (s *Store) Get(id ID) *Doclet {
	i, ok := slices.BinarySearchFunc(s.records, id, func(d *Doclet, id ID) int { return cmp.Compare(d.ID, id) })
	if !ok {
		return nil
	}
	return s.records[i]
}

// Len returns the number of queryable records.
func (s *Store) Len() int { return len(s.records) }

// All returns the queryable records in insertion order.
func (s *Store) All() []*Doclet { return s.records }

// Filter returns every record matching all predicates, in insertion order.
func (s *Store) Filter(preds ...Predicate) []*Doclet {
	var out []*Doclet
	for _, d := range s.records {
		if matches(d, preds) {
			out = append(out, d)
		}
	}
	return out
}

// Find returns the first record matching all predicates, or nil.
func (s *Store) Find(preds ...Predicate) *Doclet {
	for _, d := range s.records {
		if matches(d, preds) {
			return d
		}
	}
	return nil
}

// Retain drops every record that does not match all predicates.
func (s *Store) Retain(preds ...Predicate) int {
	kept := s.records[:0]
	for _, d := range s.records {
		if matches(d, preds) {
			kept = append(kept, d)
		}
	}
	dropped := len(s.records) - len(kept)
	clear(s.records[len(kept):])
	s.records = kept
	return dropped
}

// Ordered returns the records in the stable processing order used by every stage:
// file path, file name, line, column, then ID. Records without a position follow
// in insertion order.
func (s *Store) Ordered(preds ...Predicate) []*Doclet {
	out := s.Filter(preds...)
	slices.SortStableFunc(out, compareDoclets)
	return out
}

// Files returns the distinct source files in stable order.
func (s *Store) Files() []FileKey {
	seen := make(map[FileKey]struct{})
	var files []FileKey
	for _, d := range s.records {
		if d.Meta.Filename == "" {
			continue
		}
		k := d.Meta.File()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		files = append(files, k)
	}
	slices.SortFunc(files, func(a, b FileKey) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Filename, b.Filename))
	})
	return files
}

// InFile returns the records positioned in file, ordered by line.
func (s *Store) InFile(file FileKey, preds ...Predicate) []*Doclet {
	return s.Ordered(append([]Predicate{InFile(file)}, preds...)...)
}

// ByLongname returns every record with the given longname.
func (s *Store) ByLongname(longname string) []*Doclet {
	return s.Filter(LongnameIs(longname))
}

// Parent returns the container record that owns d, preferring one in the same file.
func (s *Store) Parent(d *Doclet) *Doclet {
	if d.MemberOf == "" {
		return nil
	}
	var fallback *Doclet
	for _, p := range s.records {
		if p == d || p.Longname != d.MemberOf || !p.Kind.IsContainer() {
			continue
		}
		if p.Meta.Filename != "" && p.Meta.File() == d.Meta.File() {
			return p
		}
		if fallback == nil {
			fallback = p
		}
	}
	return fallback
}

func matches(d *Doclet, preds []Predicate) bool {
	for _, p := range preds {
		if !p(d) {
			return false
		}
	}
	return true
}

func compareDoclets(a, b *Doclet) int {
	ap, bp := a.Meta.Filename != "", b.Meta.Filename != ""
	switch {
	case ap && !bp:
		return -1
	case !ap && bp:
		return 1
	case !ap && !bp:
		return cmp.Compare(a.ID, b.ID)
	}
	return cmp.Or(
		cmp.Compare(a.Meta.Path, b.Meta.Path),
		cmp.Compare(a.Meta.Filename, b.Meta.Filename),
		cmp.Compare(a.Meta.Line, b.Meta.Line),
		cmp.Compare(a.Meta.Column, b.Meta.Column),
		cmp.Compare(a.ID, b.ID),
	)
}
