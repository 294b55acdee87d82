package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/linker"
)

func fixture(records ...*doclet.Doclet) (*doclet.Store, *linker.Registry) {
	store := doclet.NewStore(records...)
	links := linker.New(doclet.DefaultPunctuation())
	for _, d := range store.Ordered() {
		links.CreateLink(d)
	}
	return store, links
}

func rec(kind doclet.Kind, name, longname, memberOf string) *doclet.Doclet {
	return &doclet.Doclet{Kind: kind, Name: name, Longname: longname, MemberOf: memberOf}
}

func texts(items []*Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestBuild_StructuredTree(t *testing.T) {
	helper := rec(doclet.KindFunction, "helper", "helper", "")
	helper.Scope = doclet.ScopeGlobal
	store, links := fixture(
		rec(doclet.KindModule, "module:shapes", "module:shapes", ""),
		rec(doclet.KindClass, "Square", "module:shapes.Square", "module:shapes"),
		rec(doclet.KindNamespace, "Geo", "Geo", ""),
		rec(doclet.KindClass, "Point", "Geo.Point", "Geo"),
		rec(doclet.KindEvent, "event:ready", "Geo#event:ready", "Geo"),
		helper,
	)

	n := Build(store, links, Options{})

	assert.Equal(t, "index.html", n.Home)
	require.Len(t, n.Structured, 2)
	assert.Equal(t, []string{"Geo", "shapes"}, texts(n.Structured))
	geo := n.Structured[0]
	assert.Equal(t, 3, geo.Level)
	assert.Equal(t, "Geo.html", geo.Link)
	require.Len(t, geo.Children, 1)
	assert.Equal(t, "Point", geo.Children[0].Text)
	assert.Equal(t, 4, geo.Children[0].Level)
	assert.Equal(t, []string{"Square"}, texts(n.Structured[1].Children))

	require.Len(t, n.Sections, 2)
	assert.Equal(t, "Events", n.Sections[0].Heading)
	assert.Equal(t, []string{"ready"}, texts(n.Sections[0].Items))
	assert.Equal(t, "Global", n.Sections[1].Heading)
	assert.Equal(t, []string{"helper"}, texts(n.Sections[1].Items))
	assert.Equal(t, "global.html#helper", n.Sections[1].Items[0].Link)
}

func TestBuild_EachLongnameOnce(t *testing.T) {
	store, links := fixture(
		rec(doclet.KindNamespace, "Geo", "Geo", ""),
		rec(doclet.KindClass, "Point", "Geo.Point", "Geo"),
	)

	n := Build(store, links, Options{})

	assert.Len(t, n.Structured, 1)
	assert.Empty(t, n.Sections, "classes already in the tree are not listed again")
}

func TestBuild_FlatSectionsForOrphans(t *testing.T) {
	store, links := fixture(rec(doclet.KindClass, "Inner", "Ghost.Inner", "Ghost"))

	short := Build(store, links, Options{})
	require.Len(t, short.Sections, 1)
	assert.Equal(t, "Classes", short.Sections[0].Heading)
	assert.Equal(t, []string{"Inner"}, texts(short.Sections[0].Items))

	long := Build(store, links, Options{UseLongnameInNav: true})
	assert.Equal(t, []string{"Ghost.Inner"}, texts(long.Sections[0].Items))
}

func TestBuild_FlatSectionOrder(t *testing.T) {
	store, links := fixture(
		rec(doclet.KindMixin, "Mix", "Ghost.Mix", "Ghost"),
		rec(doclet.KindEvent, "ping", "Ghost.event:ping", "Ghost"),
		rec(doclet.KindInterface, "Shape", "Ghost.Shape", "Ghost"),
		rec(doclet.KindClass, "Inner", "Ghost.Inner", "Ghost"),
		rec(doclet.KindNamespace, "Util", "Ghost.Util", "Ghost"),
		rec(doclet.KindExternal, "String", "Ghost.String", "Ghost"),
		rec(doclet.KindModule, "io", "Ghost.io", "Ghost"),
	)

	n := Build(store, links, Options{})

	headings := make([]string, 0, len(n.Sections))
	for _, s := range n.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{
		"Modules", "Externals", "Namespaces", "Classes", "Interfaces", "Events", "Mixins",
	}, headings)
}

func TestBuild_GlobalHeadingLinksWhenOnlyTypedefs(t *testing.T) {
	store, links := fixture(rec(doclet.KindTypedef, "Opts", "Opts", ""))

	n := Build(store, links, Options{})

	require.Len(t, n.Sections, 1)
	assert.Equal(t, "global.html", n.Sections[0].Link)
	assert.Contains(t, n.HTML(""), `<h3><a href="global.html">Global</a></h3>`)
}

func TestBuild_NoGlobalsNoBucket(t *testing.T) {
	store, links := fixture(rec(doclet.KindNamespace, "Geo", "Geo", ""))

	n := Build(store, links, Options{})

	assert.Empty(t, n.Sections)
}

func TestBuild_Tutorials(t *testing.T) {
	store, links := fixture()
	links.RegisterTutorial("intro", "Introduction")

	n := Build(store, links, Options{Tutorials: []string{"intro", "missing", "intro"}})

	require.Len(t, n.Sections, 1)
	s := n.Sections[0]
	assert.Equal(t, "Tutorials", s.Heading)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "Introduction", s.Items[0].Text)
	assert.Equal(t, "tutorial-intro.html", s.Items[0].Link)
	assert.Equal(t, `<em class="disabled">Tutorial: missing</em>`, s.Items[1].Text)
}

func TestNavHTML_MarksActivePage(t *testing.T) {
	store, links := fixture(
		rec(doclet.KindNamespace, "Geo", "Geo", ""),
		rec(doclet.KindClass, "Point", "Geo.Point", "Geo"),
	)
	n := Build(store, links, Options{})

	out := n.HTML("Geo.Point.html")

	assert.Equal(t, `<h2><a href="index.html">Home</a></h2>`+
		`<ul><li><h3><a href="Geo.html">Geo</a></h3>`+
		`<ul><li class="active"><h4><a href="Geo.Point.html">Point</a></h4></li></ul></li></ul>`, out)
	assert.NotContains(t, n.HTML("Geo.html"), `<li class="active"><h4>`)
}

func TestStructured_DeepEntriesArePlainLinks(t *testing.T) {
	store, links := fixture(
		rec(doclet.KindNamespace, "A", "A", ""),
		rec(doclet.KindNamespace, "B", "A.B", "A"),
		rec(doclet.KindNamespace, "C", "A.B.C", "A.B"),
	)

	n := Build(store, links, Options{})

	c := n.Structured[0].Children[0].Children[0]
	assert.Equal(t, "C", c.Text)
	assert.Zero(t, c.Level)
}
