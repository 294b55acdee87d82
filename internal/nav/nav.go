// Package nav builds the global navigation menu and per-page tables of contents.
package nav

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/linker"
)

// structuredDepth is the heading level of the outermost structured entries.
const structuredDepth = 3

var namespacePrefix = regexp.MustCompile(`\b(?:module|event):`)

// Options controls how entries are labelled.
type Options struct {
	// UseLongnameInNav labels flat section entries with fully qualified names.
	UseLongnameInNav bool
	// Tutorials are the names of the top-level tutorials, in display order.
	Tutorials []string
}

// Item is one navigation entry. Text is HTML-safe.
type Item struct {
	Text     string
	Link     string
	Level    int
	Children []*Item
}

// Section is a flat, headed list of entries.
type Section struct {
	Heading string
	// Link is set when the heading itself links somewhere instead of listing items.
	Link  string
	Items []*Item
}

// Nav is the navigation model shared by every page of a run.
type Nav struct {
	Home       string
	Structured []*Item
	Sections   []*Section
}

type builder struct {
	store *doclet.Store
	links *linker.Registry
	opts  Options
	seen  map[string]bool
}

// Build assembles the navigation for the records in store. Every longname is
// listed at most once: the structured tree claims entries first, then the flat
// sections in order, then the global bucket.
func Build(store *doclet.Store, links *linker.Registry, opts Options) *Nav {
	b := &builder{store: store, links: links, opts: opts, seen: make(map[string]bool)}
	n := &Nav{Home: links.IndexURL()}

	n.Structured = b.structured(func(d *doclet.Doclet) bool {
		return d.MemberOf == "" && d.Kind.IsContainer()
	}, structuredDepth)

	flat := []struct {
		heading string
		kind    doclet.Kind
	}{
		{"Modules", doclet.KindModule},
		{"Externals", doclet.KindExternal},
		{"Namespaces", doclet.KindNamespace},
		{"Classes", doclet.KindClass},
		{"Interfaces", doclet.KindInterface},
		{"Events", doclet.KindEvent},
		{"Mixins", doclet.KindMixin},
	}
	for _, f := range flat {
		if s := b.members(f.heading, f.kind); s != nil {
			n.Sections = append(n.Sections, s)
		}
	}
	if s := b.tutorials(); s != nil {
		n.Sections = append(n.Sections, s)
	}
	if s := b.globals(); s != nil {
		n.Sections = append(n.Sections, s)
	}
	return n
}

func (b *builder) structured(pred doclet.Predicate, depth int) []*Item {
	var items []*Item
	for _, d := range b.sorted(pred) {
		if b.seen[d.Longname] {
			continue
		}
		item := &Item{Text: linker.HTMLSafe(namespacePrefix.ReplaceAllString(d.Name, "")), Link: b.url(d.Longname)}
		item.Children = b.structured(func(c *doclet.Doclet) bool {
			return c.MemberOf == d.Longname && (c.Kind == doclet.KindNamespace || c.Kind == doclet.KindClass)
		}, depth+1)
		if depth < 5 || len(item.Children) > 0 {
			item.Level = depth
		}
		b.seen[d.Longname] = true
		items = append(items, item)
	}
	return items
}

func (b *builder) members(heading string, kind doclet.Kind) *Section {
	var items []*Item
	for _, d := range b.sorted(doclet.KindIn(kind)) {
		if b.seen[d.Longname] {
			continue
		}
		b.seen[d.Longname] = true
		label := d.Name
		if b.opts.UseLongnameInNav {
			label = d.Longname
		}
		label = namespacePrefix.ReplaceAllString(label, "")
		if kind == doclet.KindExternal {
			label = strings.TrimSuffix(strings.TrimPrefix(label, `"`), `"`)
		}
		items = append(items, &Item{Text: linker.HTMLSafe(label), Link: b.url(d.Longname)})
	}
	if len(items) == 0 {
		return nil
	}
	return &Section{Heading: heading, Items: items}
}

func (b *builder) tutorials() *Section {
	seen := make(map[string]bool)
	var items []*Item
	for _, name := range b.opts.Tutorials {
		if seen[name] {
			continue
		}
		seen[name] = true
		u, title, ok := b.links.Tutorial(name)
		if !ok {
			items = append(items, &Item{Text: `<em class="disabled">Tutorial: ` + linker.HTMLSafe(name) + `</em>`})
			continue
		}
		items = append(items, &Item{Text: linker.HTMLSafe(title), Link: u})
	}
	if len(items) == 0 {
		return nil
	}
	return &Section{Heading: "Tutorials", Items: items}
}

// globals lists ownerless members. Typedefs only count toward whether the
// bucket exists; an empty bucket becomes a link to the global page.
func (b *builder) globals() *Section {
	records := b.sorted(
		doclet.MemberOfIs(""),
		doclet.KindIn(doclet.KindFunction, doclet.KindMember, doclet.KindConstant, doclet.KindTypedef),
		func(d *doclet.Doclet) bool { return !linker.IsModuleExports(d) },
	)
	if len(records) == 0 {
		return nil
	}
	var items []*Item
	for _, d := range records {
		if d.Kind != doclet.KindTypedef && !b.seen[d.Longname] {
			items = append(items, &Item{Text: linker.HTMLSafe(d.Name), Link: b.url(d.Longname)})
		}
		b.seen[d.Longname] = true
	}
	if len(items) == 0 {
		return &Section{Heading: "Global", Link: b.links.GlobalURL()}
	}
	return &Section{Heading: "Global", Items: items}
}

// sorted returns documented records matching preds ordered by longname.
func (b *builder) sorted(preds ...doclet.Predicate) []*doclet.Doclet {
	records := b.store.Filter(append(preds, doclet.Documented)...)
	slices.SortStableFunc(records, func(x, y *doclet.Doclet) int { return cmp.Compare(x.Longname, y.Longname) })
	return records
}

func (b *builder) url(longname string) string {
	u, _ := b.links.URL(longname)
	return u
}

// HTML renders the menu, marking the entry that links to activeLink.
func (n *Nav) HTML(activeLink string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<h2><a href="%s">Home</a></h2>`, n.Home)
	writeTree(&sb, n.Structured, activeLink)
	for _, s := range n.Sections {
		if s.Link != "" {
			fmt.Fprintf(&sb, `<h3><a href="%s">%s</a></h3>`, s.Link, s.Heading)
			continue
		}
		fmt.Fprintf(&sb, "<h3>%s</h3>", s.Heading)
		writeTree(&sb, s.Items, activeLink)
	}
	return sb.String()
}

func writeTree(sb *strings.Builder, items []*Item, activeLink string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("<ul>")
	for _, it := range items {
		if it.Link != "" && it.Link == activeLink {
			sb.WriteString(`<li class="active">`)
		} else {
			sb.WriteString("<li>")
		}
		label := it.Text
		if it.Link != "" {
			label = fmt.Sprintf(`<a href="%s">%s</a>`, it.Link, it.Text)
		}
		if it.Level > 0 {
			fmt.Fprintf(sb, "<h%d>%s</h%d>", it.Level, label, it.Level)
		} else {
			sb.WriteString(label)
		}
		writeTree(sb, it.Children, activeLink)
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}
