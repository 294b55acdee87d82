package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
)

func TestNew_FreshStatePerRun(t *testing.T) {
	store := doclet.NewStore(&doclet.Doclet{Name: "Foo", Longname: "Foo", Kind: doclet.KindClass})

	a := New(store, Options{})
	b := New(store, Options{})

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.NotSame(t, a.Links, b.Links)
	assert.NotSame(t, a.Pages, b.Pages)

	a.Pages.Page(store.All()[0])
	assert.Equal(t, 1, a.Pages.Len())
	assert.Equal(t, 0, b.Pages.Len())
}

func TestNew_DefaultsAndOptions(t *testing.T) {
	punct := doclet.Punctuation{doclet.ScopeStatic: "::"}
	c := New(doclet.NewStore(), Options{}, WithPunctuation(punct))

	assert.Equal(t, "Main Page", c.Options.MainPageTitle)
	assert.Equal(t, "utf8", c.Options.Encoding)
	assert.Equal(t, "::", c.Punct.For(doclet.ScopeStatic))
	assert.NotNil(t, c.Recorder)
}
