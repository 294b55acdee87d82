package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/signature"
)

func TestClassWithConstructorAndMethod(t *testing.T) {
	foo := at(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "<p>A foo.</p>", Title: "A foo."}, 1, 0, 300)
	ctor := at(hinted(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "<p>Builds a foo.</p>"},
		doclet.HintConstructor), 2, 10, 60)
	bar := at(hinted(&doclet.Doclet{Name: "bar", Kind: doclet.KindFunction, Scope: doclet.ScopeGlobal},
		doclet.HintInstanceMember), 5, 70, 120)
	gc := newContext(foo, ctor, bar)

	Defaults(gc)
	Containment(gc)
	Constructors(gc)
	Prune(gc)
	Links(gc)
	Inheritance(gc)
	signature.Apply(gc.Store, gc.Links)

	assert.Equal(t, "<p>Builds a foo.</p>", foo.ClassDesc)
	assert.Empty(t, foo.Description)
	assert.Equal(t, "Foo#bar", bar.Longname)
	assert.Equal(t, "Foo", bar.MemberOf)
	assert.Equal(t, doclet.ScopeInstance, bar.Scope)
	assert.Equal(t, 2, gc.Store.Len(), "the constructor record is hidden")

	p := gc.Pages.Page(foo, gc.Store.Filter(doclet.MemberOfIs("Foo"))...)
	require.NotNil(t, p)
	assert.Equal(t, []*doclet.Doclet{bar}, p.Doclets[doclet.KindFunction])
	assert.Equal(t, "Foo.html", p.Link)
	assert.Equal(t, "Class: Foo", p.Title)
	assert.Contains(t, bar.Signature, `<span class="signature">()</span>`)
}
