package doclet

// Punctuation maps a scope to the separator placed between a parent longname and a
// member name. It is configuration: the textual convention is injected, not assumed.
type Punctuation map[Scope]string

// DefaultPunctuation is the JSDoc convention.
func DefaultPunctuation() Punctuation {
	return Punctuation{
		ScopeStatic:   ".",
		ScopeInstance: "#",
		ScopeInner:    "~",
	}
}

// For returns the separator for scope. Global and unknown scopes use the inner separator.
func (p Punctuation) For(scope Scope) string {
	if sep, ok := p[scope]; ok {
		return sep
	}
	if sep, ok := p[ScopeInner]; ok {
		return sep
	}
	return "~"
}

// Join builds a member longname.
func (p Punctuation) Join(parent string, scope Scope, name string) string {
	if parent == "" {
		return name
	}
	return parent + p.For(scope) + name
}
