package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/linker"
	"git.home.luguber.info/inful/classydoc/internal/page"
)

func classPage(t *testing.T) (*linker.Registry, *page.Page) {
	t.Helper()
	foo := &doclet.Doclet{ID: 1, Kind: doclet.KindClass, Name: "Foo", Longname: "Foo", Scope: doclet.ScopeGlobal,
		ClassDesc: "<p>Builds foos.</p>", Signature: `<span class="signature">(size)</span>`,
		Params: []doclet.Param{{Name: "size", Type: &doclet.TypeNames{Names: []string{"number"}}, Description: "<p>How big.</p>"}}}
	foo.Meta.ShortPath = "a.js"
	foo.Meta.Line = 3
	bar := &doclet.Doclet{ID: 2, Kind: doclet.KindFunction, Name: "bar", Longname: "Foo#bar", MemberOf: "Foo",
		Scope: doclet.ScopeInstance, Description: "<p>Does bar.</p>", Signature: `<span class="signature">()</span>`,
		Returns: []doclet.Return{{Type: &doclet.TypeNames{Names: []string{"Foo"}}}}}

	links := linker.New(nil)
	links.CreateLink(foo)
	links.CreateLink(bar)
	links.Register("a.js", links.UniqueFilename("a.js"))
	pages := page.NewRegistry(doclet.NewStore(foo, bar), links)
	return links, pages.Page(foo, bar)
}

func TestRender_ContainerPage(t *testing.T) {
	links, p := classPage(t)
	tpl, err := New(links, Options{OutputSourceFiles: true})
	require.NoError(t, err)

	out, err := tpl.Render(TemplateFor(p.Kind), View{Page: p, Nav: "<h2>NAV</h2>", TOC: "<ul>TOC</ul>", Encoding: "utf8"})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>Class: Foo</title>")
	assert.Contains(t, html, `<nav id="nav"><h2>NAV</h2></nav>`)
	assert.Contains(t, html, "<ul>TOC</ul>")
	assert.Contains(t, html, `<div class="class-description"><p>Builds foos.</p></div>`)
	assert.Contains(t, html, `<code>new Foo<span class="signature">(size)</span></code>`)
	assert.Contains(t, html, `<h3 class="subsection-title" id="methods">Methods</h3>`)
	assert.Contains(t, html, `<div class="member" id="bar">`)
	assert.Contains(t, html, `<dt><a href="Foo.html">Foo</a></dt>`)
	assert.Contains(t, html, `<a href="a.js.html#line3">a.js, line 3</a>`)
}

func TestRender_SourceLinksAsTextWhenSourcesAreNotPublished(t *testing.T) {
	links, p := classPage(t)
	tpl, err := New(links, Options{})
	require.NoError(t, err)

	out, err := tpl.Render("container", View{Page: p, Encoding: "utf8"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<dd>a.js, line 3</dd>")
}

func TestRender_SourcePageEscapesCode(t *testing.T) {
	src := &doclet.Doclet{ID: 1, Kind: doclet.KindSource, Name: "a.js", Code: "if (a < b) {}"}
	links := linker.New(nil)
	p := page.NewRegistry(doclet.NewStore(), links).Page(src)
	tpl, err := New(links, Options{})
	require.NoError(t, err)

	out, err := tpl.Render(TemplateFor(p.Kind), View{Page: p, Encoding: "utf8"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "if (a &lt; b) {}")
	assert.Contains(t, string(out), "<title>Source: a.js</title>")
}

func TestNew_OverridesReplaceEmbeddedDefinitions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "footer.tmpl"),
		[]byte(`{{define "footer"}}<footer>custom</footer>{{end}}`), 0o600))
	links, p := classPage(t)

	tpl, err := New(links, Options{Dir: dir})
	require.NoError(t, err)
	out, err := tpl.Render("container", View{Page: p, Encoding: "utf8"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<footer>custom</footer>")
	assert.NotContains(t, string(out), "generated by classydoc")
}

func TestNew_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.tmpl"), []byte(`{{define "x"}}{{end`), 0o600))

	_, err := New(linker.New(nil), Options{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryRender))
}

func TestRender_UnknownTemplate(t *testing.T) {
	tpl, err := New(linker.New(nil), Options{})
	require.NoError(t, err)

	_, err = tpl.Render("nope", View{})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryRender))
}

func TestTemplateFor(t *testing.T) {
	assert.Equal(t, "source", TemplateFor(doclet.KindSource))
	assert.Equal(t, "tutorial", TemplateFor(doclet.KindTutorial))
	assert.Equal(t, "container", TemplateFor(doclet.KindGlobalObj))
}
