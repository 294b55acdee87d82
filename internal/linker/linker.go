// Package linker maps symbol longnames to output URLs and renders links between pages.
//
// A Registry belongs to exactly one generation run. File names and fragment ids are
// claimed first-come-first-served and compared case-insensitively, so two symbols
// never share an output file even on case-folding filesystems.
package linker

import (
	"net/url"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
)

// Extension is appended to every generated file name.
const Extension = ".html"

// Well-known pages claimed before any symbol is registered.
const (
	GlobalName = "global"
	IndexName  = "index"
)

var (
	namespacePrefix = regexp.MustCompile(`^(module|external|event):`)
	unsafeFileChars = regexp.MustCompile(`[\\/?*:|'"<>]`)
	variationSuffix = regexp.MustCompile(`\([\s\S]*\)$`)
	whitespace      = regexp.MustCompile(`\s`)
)

// Registry is the per-run longname → URL table.
type Registry struct {
	punct     doclet.Punctuation
	files     map[string]string
	urls      map[string]string
	ids       map[string]string
	fileIDs   map[string]map[string]struct{}
	tutorials map[string]tutorialLink

	globalURL string
	indexURL  string
}

type tutorialLink struct {
	url   string
	title string
}

// New returns an empty registry that has already claimed the global and index pages.
func New(punct doclet.Punctuation) *Registry {
	if punct == nil {
		punct = doclet.DefaultPunctuation()
	}
	r := &Registry{
		punct:     punct,
		files:     make(map[string]string),
		urls:      make(map[string]string),
		ids:       make(map[string]string),
		fileIDs:   make(map[string]map[string]struct{}),
		tutorials: make(map[string]tutorialLink),
	}
	r.globalURL = r.UniqueFilename(GlobalName)
	r.indexURL = r.UniqueFilename(IndexName)
	r.Register(GlobalName, r.globalURL)
	return r
}

// GlobalURL is the file holding ownerless symbols.
func (r *Registry) GlobalURL() string { return r.globalURL }

// IndexURL is the home page file.
func (r *Registry) IndexURL() string { return r.indexURL }

// UniqueFilename derives a file name from str that no earlier call has returned.
func (r *Registry) UniqueFilename(str string) string {
	base := namespacePrefix.ReplaceAllString(str, "$1-")
	base = unsafeFileChars.ReplaceAllString(base, "_")
	base = strings.ReplaceAll(base, "~", "-")
	base = strings.ReplaceAll(base, "#", "_")
	base = variationSuffix.ReplaceAllString(base, "")
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "-") {
		base = base[1:]
	}
	if base == "" {
		base = "_"
	}
	for {
		key := strings.ToLower(base)
		if _, taken := r.files[key]; !taken {
			r.files[key] = str
			break
		}
		base += "_"
	}
	return base + Extension
}

// Register binds longname to url. The first registration wins.
func (r *Registry) Register(longname, url string) {
	if _, ok := r.urls[longname]; ok {
		return
	}
	r.urls[longname] = url
}

// URL returns the URL registered for longname.
func (r *Registry) URL(longname string) (string, bool) {
	u, ok := r.urls[longname]
	return u, ok
}

// CreateLink registers and returns the URL of d: its own file for containers and
// module exports, otherwise a fragment in its parent's file (or the global page).
func (r *Registry) CreateLink(d *doclet.Doclet) string {
	if u, ok := r.urls[d.Longname]; ok && d.Longname != "" {
		return u
	}
	var filename, fragment string
	if d.Kind.IsContainer() || IsModuleExports(d) {
		filename = r.filename(d.Longname)
	} else {
		owner := d.MemberOf
		if owner == "" {
			owner = GlobalName
		}
		filename = r.filename(owner)
		if d.Name != d.Longname || d.Scope == doclet.ScopeGlobal {
			fragment = r.fragmentID(filename, d.Longname, r.fragmentName(d))
		}
	}
	link := encodeURI(filename, fragment)
	if d.Longname != "" {
		r.Register(d.Longname, link)
	}
	return link
}

// Anchor returns the in-page id of d: its registered fragment, or its name.
func (r *Registry) Anchor(d *doclet.Doclet) string {
	if id, ok := r.ids[d.Longname]; ok {
		return id
	}
	return d.Name
}

// IsModuleExports reports whether d is the value a module exports directly.
func IsModuleExports(d *doclet.Doclet) bool {
	return d.Longname != "" && d.Longname == d.Name && strings.HasPrefix(d.Longname, "module:") && d.Kind != doclet.KindModule
}

func (r *Registry) filename(longname string) string {
	if u, ok := r.urls[longname]; ok {
		if i := strings.IndexByte(u, '#'); i >= 0 {
			return u[:i]
		}
		return u
	}
	f := r.UniqueFilename(longname)
	r.Register(longname, f)
	return f
}

func (r *Registry) fragmentName(d *doclet.Doclet) string {
	name := d.Name
	switch d.Kind {
	case doclet.KindModule, doclet.KindExternal, doclet.KindEvent:
		name = string(d.Kind) + ":" + name
	}
	if d.Scope == "" || d.Scope == doclet.ScopeGlobal {
		return name
	}
	// The instance separator doubles as the fragment marker, so it is never repeated.
	if sep := r.punct.For(d.Scope); sep != r.punct.For(doclet.ScopeInstance) {
		name = sep + name
	}
	return name
}

func (r *Registry) fragmentID(filename, longname, id string) string {
	if existing, ok := r.ids[longname]; ok {
		return existing
	}
	id = whitespace.ReplaceAllString(id, "")
	taken := r.fileIDs[filename]
	if taken == nil {
		taken = make(map[string]struct{})
		r.fileIDs[filename] = taken
	}
	for {
		key := strings.ToLower(id)
		if _, ok := taken[key]; !ok {
			taken[key] = struct{}{}
			break
		}
		id += "_"
	}
	r.ids[longname] = id
	return id
}

func encodeURI(filename, fragment string) string {
	u := url.URL{Path: filename, Fragment: fragment}
	return u.String()
}
