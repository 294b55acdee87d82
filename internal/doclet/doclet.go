package doclet

import (
	"path"
	"strings"
)

// ID is the stable synthetic key assigned to a record when it is added to a Store.
type ID int

// TypeNames is the set of type expressions attached to a record, parameter or return value.
type TypeNames struct {
	Names []string `json:"names"`
}

// Param describes a parameter or a property.
type Param struct {
	Name         string     `json:"name"`
	Type         *TypeNames `json:"type,omitempty"`
	Description  string     `json:"description,omitempty"`
	Optional     bool       `json:"optional,omitempty"`
	Nullable     *bool      `json:"nullable,omitempty"`
	Variable     bool       `json:"variable,omitempty"`
	DefaultValue string     `json:"defaultvalue,omitempty"`
}

// Return describes a return value, yielded value or thrown exception.
type Return struct {
	Type        *TypeNames `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	Nullable    *bool      `json:"nullable,omitempty"`
}

// Example is one example block. Raw examples arrive with only Code set; the page
// model splits a leading caption off.
type Example struct {
	Caption string
	Code    string
}

// Code is the opaque raw-node information captured by the parser adapter.
type Code struct {
	Name      string
	Type      string
	Value     string
	ValueKind string
	Hint      NodeHint
	Callable  bool
}

// Meta holds the source position of a record.
type Meta struct {
	Path      string
	Filename  string
	Line      int
	Column    int
	Range     *[2]int
	ShortPath string
	Code      Code
}

// FileKey identifies a source file.
type FileKey struct {
	Path     string
	Filename string
}

// File returns the file identity of the record's position.
func (m Meta) File() FileKey { return FileKey{Path: m.Path, Filename: m.Filename} }

// HasPosition reports whether the record carries a usable file and line.
func (m Meta) HasPosition() bool { return m.Filename != "" && m.Line > 0 }

// SourcePath joins directory and file name, or returns "" when unknown.
func (m Meta) SourcePath() string {
	if m.Filename == "" {
		return ""
	}
	if m.Path == "" || m.Path == "null" {
		return m.Filename
	}
	return path.Join(m.Path, m.Filename)
}

// Within reports whether m's range sits inside outer's. Missing ranges never exclude.
func (m Meta) Within(outer Meta) bool {
	if m.Range == nil || outer.Range == nil {
		return true
	}
	return m.Range[0] >= outer.Range[0] && m.Range[1] <= outer.Range[1]
}

// Doclet is one symbol record.
type Doclet struct {
	ID ID

	Name         string
	Alias        string
	Kind         Kind
	Scope        Scope
	Access       string
	Undocumented bool
	Ignore       bool

	Longname string
	MemberOf string
	Meta     Meta

	Title            string
	Summary          string
	Description      string
	ClassDesc        string
	Params           []Param
	Properties       []Param
	Returns          []Return
	Yields           []Return
	Exceptions       []Return
	Examples         []Example
	See              []string
	Type             *TypeNames
	DefaultValue     string
	DefaultValueType string
	Since            string
	Version          string
	Deprecated       string
	Virtual          bool
	Async            bool
	Generator        bool
	Readonly         bool
	Optional         bool
	Nullable         *bool

	Augments      []string
	Implements    []string
	Overrides     []string
	InheritedFrom string

	Signature     string
	Attribs       string
	Anchor        string
	Ancestors     []string
	SourceURL     string
	ModuleSymbols []*Doclet

	// Readme and Code carry the body of synthetic home and source records.
	Readme string
	Code   string
}

// Documented reports whether the record should appear in generated output.
func (d *Doclet) Documented() bool { return !d.Undocumented && !d.Ignore }

// HasTypeName reports whether any of the record's type names equals name, ignoring case.
func (d *Doclet) HasTypeName(name string) bool {
	if d.Type == nil {
		return false
	}
	for _, n := range d.Type.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy with its own slices for the fields the generator rewrites.
func (d *Doclet) Clone() *Doclet {
	c := *d
	c.Examples = append([]Example(nil), d.Examples...)
	c.See = append([]string(nil), d.See...)
	c.Ancestors = append([]string(nil), d.Ancestors...)
	return &c
}
