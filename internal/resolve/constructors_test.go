package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
)

func TestConstructors_DifferingDescriptionBecomesClassDesc(t *testing.T) {
	foo := at(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "<p>A foo.</p>", Title: "A foo."}, 1, 0, 500)
	ctor := at(hinted(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "<p>Builds a foo.</p>",
		Params: []doclet.Param{{Name: "size"}}}, doclet.HintConstructor), 3, 20, 80)

	Constructors(newContext(foo, ctor))

	assert.Equal(t, "<p>Builds a foo.</p>", foo.ClassDesc)
	assert.Empty(t, foo.Description)
	assert.True(t, ctor.Undocumented)
	assert.Equal(t, []doclet.Param{{Name: "size"}}, foo.Params)
}

func TestConstructors_NoConstructorPromotesDescription(t *testing.T) {
	foo := at(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "<p>Long text.</p>", Title: "Short"}, 1, 0, 0)

	Constructors(newContext(foo))

	assert.Equal(t, "<p>Long text.</p>", foo.ClassDesc)
	assert.Empty(t, foo.Description)
}

func TestConstructors_MatchingDescriptionPromotes(t *testing.T) {
	foo := at(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "same"}, 1, 0, 0)
	ctor := at(hinted(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "same"}, doclet.HintConstructor), 2, 0, 0)

	Constructors(newContext(foo, ctor))

	assert.Equal(t, "same", foo.ClassDesc)
	assert.Empty(t, foo.Description)
}

func TestConstructors_KeepsOwnParams(t *testing.T) {
	foo := at(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Params: []doclet.Param{{Name: "mine"}}}, 1, 0, 0)
	ctor := at(hinted(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass,
		Params: []doclet.Param{{Name: "theirs"}}, Properties: []doclet.Param{{Name: "prop"}}}, doclet.HintConstructor), 2, 0, 0)

	Constructors(newContext(foo, ctor))

	assert.Equal(t, []doclet.Param{{Name: "mine"}}, foo.Params)
	assert.Equal(t, []doclet.Param{{Name: "prop"}}, foo.Properties)
}

func TestConstructors_ExplicitClassDescKeepsDescription(t *testing.T) {
	foo := at(&doclet.Doclet{Name: "Foo", Kind: doclet.KindClass, Description: "<p>Summary.</p>",
		ClassDesc: "<p>Explicit.</p>"}, 1, 0, 0)
	bar := at(&doclet.Doclet{Name: "Bar", Kind: doclet.KindClass, Description: "same", ClassDesc: "<p>Tagged.</p>"}, 10, 0, 0)
	barCtor := at(hinted(&doclet.Doclet{Name: "Bar", Kind: doclet.KindClass, Description: "same"}, doclet.HintConstructor), 11, 0, 0)

	Constructors(newContext(foo, bar, barCtor))

	assert.Equal(t, "<p>Explicit.</p>", foo.ClassDesc)
	assert.Equal(t, "<p>Summary.</p>", foo.Description)
	assert.Equal(t, "<p>Tagged.</p>", bar.ClassDesc)
	assert.Equal(t, "same", bar.Description)
}

func TestConstructors_BoundedByNextSibling(t *testing.T) {
	a := at(&doclet.Doclet{Name: "A", Kind: doclet.KindClass, Description: "a"}, 1, 0, 0)
	b := at(&doclet.Doclet{Name: "B", Kind: doclet.KindClass, Description: "b"}, 10, 0, 0)
	bCtor := at(hinted(&doclet.Doclet{Name: "B", Kind: doclet.KindClass, Description: "builds b"}, doclet.HintConstructor), 12, 0, 0)

	Constructors(newContext(a, b, bCtor))

	assert.Equal(t, "a", a.ClassDesc)
	assert.Equal(t, "builds b", b.ClassDesc)
	assert.Equal(t, "b", b.Description)
}

func TestConstructors_InterfaceBecomesVirtual(t *testing.T) {
	shape := at(&doclet.Doclet{Name: "Shape", Kind: doclet.KindInterface, Description: "s"}, 1, 0, 0)
	ctor := at(hinted(&doclet.Doclet{Name: "Shape", Kind: doclet.KindClass}, doclet.HintConstructor), 2, 0, 0)
	plain := at(&doclet.Doclet{Name: "Plain", Kind: doclet.KindInterface, Description: "p"}, 20, 0, 0)

	ctx := newContext(shape, ctor, plain)
	// A second interface closes the first one's window.
	Constructors(ctx)

	assert.True(t, shape.Virtual)
	assert.True(t, ctor.Undocumented)
	assert.False(t, plain.Virtual)
}
