package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/page"
)

func ids(entries []*page.TOCEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestHeadings_NestsByLevel(t *testing.T) {
	toc := Headings(`<h2 id="a">A</h2><h3 id="b">B</h3><h2 id="c">C</h2>`)

	require.Len(t, toc, 2)
	assert.Equal(t, []string{"a", "c"}, ids(toc))
	assert.Equal(t, []string{"b"}, ids(toc[0].Children))
	assert.Empty(t, toc[1].Children)
}

func TestHeadings(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		roots    []string
	}{
		{"empty", "", nil},
		{"no headings", "<p>text</p>", nil},
		{"headings without ids are skipped", `<h2>x</h2><h2 id="y">Y</h2>`, []string{"y"}},
		{"deeper first heading stays a root", `<h4 id="d">D</h4><h2 id="a">A</h2>`, []string{"d", "a"}},
		{"equal levels are siblings", `<h3 id="a">A</h3><h3 id="b">B</h3>`, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.roots, ids(Headings(tt.fragment)))
		})
	}
}

func TestHeadings_TitleIsTextContent(t *testing.T) {
	toc := Headings(`<h2 id="x">Using <code>Foo</code></h2>`)

	require.Len(t, toc, 1)
	assert.Equal(t, "Using Foo", toc[0].Title)
}

func TestTOC_ContainerPage(t *testing.T) {
	d := &doclet.Doclet{
		Kind:      doclet.KindClass,
		Name:      "Foo",
		Signature: "<span>()</span>",
		Params:    []doclet.Param{{Name: "a"}},
		Examples:  []doclet.Example{{Code: "new Foo()"}},
		ClassDesc: `<h2 id="overview">Overview</h2>`,
	}
	bar := &doclet.Doclet{Kind: doclet.KindFunction, Name: "bar", Anchor: "bar"}
	size := &doclet.Doclet{Kind: doclet.KindMember, Name: "size", Anchor: "size"}
	p := &page.Page{Doclet: d, Kind: d.Kind, Doclets: map[doclet.Kind][]*doclet.Doclet{
		doclet.KindFunction: {bar},
		doclet.KindMember:   {size},
	}}

	toc := TOC(p)

	assert.Equal(t, []string{"usage", "parameters", "examples", "overview", "members", "methods"}, ids(toc))
	assert.Equal(t, []string{"size"}, ids(toc[4].Children))
	assert.Equal(t, []string{"bar"}, ids(toc[5].Children))
}

func TestTOC_NonContainerPageUsesBody(t *testing.T) {
	d := &doclet.Doclet{Kind: doclet.KindMainPage, Name: "Main Page", Params: []doclet.Param{{Name: "ignored"}}}
	p := &page.Page{Doclet: d, Kind: d.Kind, Body: `<h1 id="readme">Readme</h1>`}

	assert.Equal(t, []string{"readme"}, ids(TOC(p)))
}

func TestTOC_HomePageListsEntrySections(t *testing.T) {
	home := &doclet.Doclet{Kind: doclet.KindMainPage, Name: "Home"}
	entry := &doclet.Doclet{Kind: doclet.KindClass, Name: "App", Signature: "<span>()</span>",
		Params: []doclet.Param{{Name: "opts"}}, Description: `<h2 id="setup">Setup</h2>`}
	run := &doclet.Doclet{Kind: doclet.KindFunction, Name: "run", Anchor: "run"}
	p := &page.Page{Doclet: home, Kind: home.Kind, Entry: entry, Body: `<h1 id="readme">Readme</h1>`,
		Doclets: map[doclet.Kind][]*doclet.Doclet{doclet.KindFunction: {run}}}

	assert.Equal(t, []string{"usage", "parameters", "setup", "readme", "methods"}, ids(TOC(p)))
}

func TestTOC_SourcePagesHaveNoHeadings(t *testing.T) {
	d := &doclet.Doclet{Kind: doclet.KindSource, Name: "a.js"}
	p := &page.Page{Doclet: d, Kind: d.Kind, Body: `<h2 id="x">X</h2>`}

	assert.Empty(t, TOC(p))
}

func TestTOCHTML(t *testing.T) {
	toc := Headings(`<h2 id="a">A &amp; B</h2><h3 id="b">B</h3>`)

	assert.Equal(t, `<ul><li><a href="#a">A &amp; B</a><ul><li><a href="#b">B</a></li></ul></li></ul>`, TOCHTML(toc))
	assert.Empty(t, TOCHTML(nil))
}
