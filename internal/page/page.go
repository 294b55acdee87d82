// Package page aggregates a primary record and its children into renderable pages.
package page

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/linker"
)

var captionedExample = regexp.MustCompile(`(?is)^\s*<caption>(.+?)</caption>\s*[\n\r](.+)$`)

// titledKinds receive a "Kind: " prefix in their page title.
var titledKinds = []doclet.Kind{
	doclet.KindModule, doclet.KindClass, doclet.KindNamespace, doclet.KindMixin,
	doclet.KindExternal, doclet.KindInterface, doclet.KindSource, doclet.KindTutorial,
}

// Page is one output document.
type Page struct {
	Doclet  *doclet.Doclet
	Kind    doclet.Kind
	Title   string
	Heading string
	Link    string
	Path    string

	Ancestors []string
	Doclets   map[doclet.Kind][]*doclet.Doclet
	Body      string

	// ResolveLinks is false for pages whose body must be written verbatim (source listings).
	ResolveLinks bool

	Nav string
	TOC []*TOCEntry

	// Entry is the record spliced into this page in place of its own page.
	Entry *doclet.Doclet
}

// TOCEntry is one node of a page's table of contents.
type TOCEntry struct {
	ID       string
	Title    string
	Level    int
	Children []*TOCEntry
}

// Section is one non-empty child group of a page.
type Section struct {
	ID      string
	Title   string
	Kind    doclet.Kind
	Members []*doclet.Doclet
}

// sectionOrder lists child groups in the order they appear on a page.
var sectionOrder = []struct {
	kind  doclet.Kind
	id    string
	title string
}{
	{doclet.KindClass, "classes", "Classes"},
	{doclet.KindInterface, "interfaces", "Interfaces"},
	{doclet.KindMixin, "mixins", "Mixins"},
	{doclet.KindNamespace, "namespaces", "Namespaces"},
	{doclet.KindExternal, "externals", "Externals"},
	{doclet.KindMember, "members", "Members"},
	{doclet.KindFunction, "methods", "Methods"},
	{doclet.KindTypedef, "typedefs", "Type Definitions"},
	{doclet.KindEvent, "events", "Events"},
}

// Sections returns the page's non-empty member groups in display order.
func (p *Page) Sections() []Section {
	var out []Section
	for _, s := range sectionOrder {
		if members := p.Doclets[s.kind]; len(members) > 0 {
			out = append(out, Section{ID: s.id, Title: s.title, Kind: s.kind, Members: members})
		}
	}
	return out
}

// Group returns the children of kind k in insertion order.
func (p *Page) Group(k doclet.Kind) []*doclet.Doclet { return p.Doclets[groupKind(k)] }

// Registry is the per-run identity map from primary record to page.
type Registry struct {
	store *doclet.Store
	links *linker.Registry
	pages map[doclet.ID]*Page
	order []*Page
	title cases.Caser
}

// NewRegistry returns an empty registry over store.
func NewRegistry(store *doclet.Store, links *linker.Registry) *Registry {
	return &Registry{
		store: store,
		links: links,
		pages: make(map[doclet.ID]*Page),
		title: cases.Title(language.English),
	}
}

// Page returns the page for primary, creating it on first use. Later calls merge
// children into the existing page's groups.
func (r *Registry) Page(primary *doclet.Doclet, children ...*doclet.Doclet) *Page {
	if p, ok := r.pages[primary.ID]; ok {
		r.addChildren(p, children)
		return p
	}

	p := &Page{
		Doclet:       primary,
		Kind:         primary.Kind,
		Heading:      displayName(primary),
		Link:         r.link(primary),
		Path:         primary.Meta.SourcePath(),
		Ancestors:    primary.Ancestors,
		Doclets:      make(map[doclet.Kind][]*doclet.Doclet),
		ResolveLinks: primary.Kind != doclet.KindSource,
	}
	p.Title = r.pageTitle(primary)
	primary.Attribs = ""
	r.normalize(primary, p.Link)

	if primary.Kind == doclet.KindGlobalObj {
		children = append(children, r.globals()...)
	}
	r.addChildren(p, children)

	r.pages[primary.ID] = p
	r.order = append(r.order, p)
	return p
}

// Get returns the page owned by id.
func (r *Registry) Get(id doclet.ID) (*Page, bool) {
	p, ok := r.pages[id]
	return p, ok
}

// Remove drops the page owned by id.
func (r *Registry) Remove(id doclet.ID) {
	p, ok := r.pages[id]
	if !ok {
		return
	}
	delete(r.pages, id)
	r.order = slices.DeleteFunc(r.order, func(q *Page) bool { return q == p })
}

// All returns the pages in creation order.
func (r *Registry) All() []*Page { return r.order }

// Len returns the number of pages.
func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) addChildren(p *Page, children []*doclet.Doclet) {
	for _, c := range children {
		if c == nil {
			continue
		}
		k := groupKind(c.Kind)
		if slices.ContainsFunc(p.Doclets[k], func(x *doclet.Doclet) bool { return x.ID == c.ID }) {
			continue
		}
		if c != p.Doclet {
			r.normalize(c, r.link(c))
		}
		p.Doclets[k] = append(p.Doclets[k], c)
		if k == doclet.KindReadme && p.Kind == doclet.KindMainPage {
			p.Body += c.Readme
		}
	}
}

func (r *Registry) link(d *doclet.Doclet) string {
	switch d.Kind {
	case doclet.KindGlobalObj:
		return r.links.GlobalURL()
	case doclet.KindMainPage:
		return r.links.IndexURL()
	case doclet.KindSource:
		u, _ := r.links.URL(d.Name)
		return u
	case doclet.KindTutorial:
		u, _ := r.links.TutorialURL(d.Name)
		return u
	case doclet.KindReadme, doclet.KindPackage, doclet.KindFile:
		return r.links.IndexURL()
	}
	return r.links.CreateLink(d)
}

func (r *Registry) pageTitle(d *doclet.Doclet) string {
	name := d.Name
	if d.Kind == doclet.KindTutorial && d.Title != "" {
		name = d.Title
	}
	if slices.Contains(titledKinds, d.Kind) {
		return r.title.String(string(d.Kind)) + ": " + name
	}
	return name
}

// normalize splits example captions, anchors bare #fragment references and
// derives the record's in-page id.
func (r *Registry) normalize(d *doclet.Doclet, link string) {
	for i, ex := range d.Examples {
		if ex.Caption != "" {
			continue
		}
		if m := captionedExample.FindStringSubmatch(ex.Code); m != nil {
			d.Examples[i] = doclet.Example{Caption: m[1], Code: m[2]}
		}
	}
	for i, s := range d.See {
		if strings.HasPrefix(s, "#") && len(s) > 1 {
			base, _, _ := strings.Cut(link, "#")
			d.See[i] = `<a href="` + base + s + `">` + linker.HTMLSafe(s) + `</a>`
		}
	}
	if _, frag, ok := strings.Cut(link, "#"); ok {
		d.Anchor = frag
	} else {
		d.Anchor = d.Name
	}
}

func (r *Registry) globals() []*doclet.Doclet {
	gs := r.store.Filter(
		doclet.MemberOfIs(""),
		doclet.KindIn(doclet.KindFunction, doclet.KindMember, doclet.KindConstant, doclet.KindTypedef),
		doclet.Documented,
		func(d *doclet.Doclet) bool { return !linker.IsModuleExports(d) },
	)
	slices.SortStableFunc(gs, func(a, b *doclet.Doclet) int { return cmp.Compare(a.Longname, b.Longname) })
	return gs
}

func groupKind(k doclet.Kind) doclet.Kind {
	if k == doclet.KindConstant {
		return doclet.KindMember
	}
	return k
}

func displayName(d *doclet.Doclet) string {
	name := d.Name
	switch d.Kind {
	case doclet.KindModule:
		name = strings.TrimPrefix(name, "module:")
	case doclet.KindExternal:
		name = strings.Trim(name, `"`)
	}
	return name
}
