package doclet

// Kind is the kind of symbol a doclet documents.
type Kind string

const (
	KindModule    Kind = "module"
	KindNamespace Kind = "namespace"
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindMixin     Kind = "mixin"
	KindExternal  Kind = "external"
	KindFunction  Kind = "function"
	KindMember    Kind = "member"
	KindConstant  Kind = "constant"
	KindTypedef   Kind = "typedef"
	KindEvent     Kind = "event"
	KindSource    Kind = "source"
	KindFile      Kind = "file"
	KindPackage   Kind = "package"
	KindMainPage  Kind = "mainpage"
	KindTutorial  Kind = "tutorial"
	KindGlobalObj Kind = "globalobj"
	KindReadme    Kind = "readme"
)

// ContainerKinds lists the kinds that own other records and receive their own page.
var ContainerKinds = []Kind{KindModule, KindNamespace, KindClass, KindInterface, KindMixin, KindExternal}

// IsContainer reports whether k may own other records.
func (k Kind) IsContainer() bool {
	switch k {
	case KindModule, KindNamespace, KindClass, KindInterface, KindMixin, KindExternal:
		return true
	}
	return false
}

// IsSynthetic reports whether k only ever appears on records the generator creates itself.
func (k Kind) IsSynthetic() bool {
	switch k {
	case KindSource, KindFile, KindPackage, KindMainPage, KindTutorial, KindGlobalObj, KindReadme:
		return true
	}
	return false
}

// IsMemberLike reports whether k is listed among a page's members rather than owning a page.
func (k Kind) IsMemberLike() bool {
	switch k {
	case KindFunction, KindMember, KindConstant, KindTypedef:
		return true
	}
	return false
}

// Scope is the scope of a symbol relative to its parent.
type Scope string

const (
	ScopeStatic   Scope = "static"
	ScopeInstance Scope = "instance"
	ScopeInner    Scope = "inner"
	ScopeGlobal   Scope = "global"
)

// NodeHint classifies the syntax node behind a record. It is produced once by the
// parser adapter and consumed as plain data by containment and constructor merging.
type NodeHint int

const (
	HintOther NodeHint = iota
	HintConstructor
	HintStaticMember
	HintInstanceMember
)

func (h NodeHint) String() string {
	switch h {
	case HintConstructor:
		return "constructor"
	case HintStaticMember:
		return "static"
	case HintInstanceMember:
		return "instance"
	default:
		return "other"
	}
}
