package doclet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name string, kind Kind, file string, line int) *Doclet {
	d := &Doclet{Name: name, Longname: name, Kind: kind, Scope: ScopeGlobal}
	if file != "" {
		d.Meta = Meta{Path: "src", Filename: file, Line: line}
	}
	return d
}

func TestStore_AssignsSequentialIDs(t *testing.T) {
	s := NewStore(rec("a", KindFunction, "a.js", 1), rec("b", KindFunction, "a.js", 2))
	synthetic := s.Detached(&Doclet{Kind: KindGlobalObj, Name: "Global"})
	added := s.Add(rec("c", KindMember, "b.js", 1))

	assert.Equal(t, ID(0), s.All()[0].ID)
	assert.Equal(t, ID(1), s.All()[1].ID)
	assert.Equal(t, ID(2), synthetic.ID)
	assert.Equal(t, ID(3), added.ID)
	assert.Equal(t, 3, s.Len())
	assert.Nil(t, s.Find(KindIn(KindGlobalObj)))
}

func TestStore_OrderedIsFileThenLine(t *testing.T) {
	s := NewStore(
		rec("late", KindFunction, "b.js", 1),
		rec("nopos", KindMember, "", 0),
		rec("second", KindFunction, "a.js", 20),
		rec("first", KindFunction, "a.js", 3),
	)

	var names []string
	for _, d := range s.Ordered() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"first", "second", "late", "nopos"}, names)
}

func TestStore_FilterAndFind(t *testing.T) {
	s := NewStore(
		rec("Foo", KindClass, "a.js", 1),
		&Doclet{Name: "bar", Longname: "Foo#bar", MemberOf: "Foo", Kind: KindFunction, Scope: ScopeInstance},
		&Doclet{Name: "baz", Longname: "Foo.baz", MemberOf: "Foo", Kind: KindMember, Scope: ScopeStatic, Undocumented: true},
	)

	members := s.Filter(MemberOfIs("Foo"), Documented)
	require.Len(t, members, 1)
	assert.Equal(t, "Foo#bar", members[0].Longname)

	assert.Equal(t, "baz", s.Find(ScopeIs(ScopeStatic)).Name)
	assert.Nil(t, s.Find(KindIn(KindModule)))
	assert.Len(t, s.Filter(Not(Containers)), 2)
}

func TestStore_InFileAndLinesBetween(t *testing.T) {
	s := NewStore(
		rec("a", KindClass, "x.js", 10),
		rec("b", KindFunction, "x.js", 25),
		rec("c", KindFunction, "x.js", 60),
		rec("d", KindFunction, "y.js", 25),
	)
	got := s.InFile(FileKey{Path: "src", Filename: "x.js"}, LinesBetween(10, 50))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Name)

	assert.Len(t, s.InFile(FileKey{Path: "src", Filename: "x.js"}, LinesBetween(10, -1)), 2)
	assert.Equal(t, []FileKey{{"src", "x.js"}, {"src", "y.js"}}, s.Files())
}

func TestStore_ParentPrefersSameFile(t *testing.T) {
	other := rec("Foo", KindClass, "other.js", 1)
	local := rec("Foo", KindClass, "a.js", 1)
	child := &Doclet{Name: "bar", Longname: "Foo#bar", MemberOf: "Foo", Kind: KindFunction,
		Meta: Meta{Path: "src", Filename: "a.js", Line: 4}}
	s := NewStore(other, local, child)

	assert.Same(t, local, s.Parent(child))
	assert.Nil(t, s.Parent(other))
}

func TestStore_Retain(t *testing.T) {
	s := NewStore(rec("a", KindClass, "a.js", 1), &Doclet{Name: "b", Undocumented: true})
	dropped := s.Retain(Documented)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 1, s.Len())
}

func TestPunctuation_Join(t *testing.T) {
	p := DefaultPunctuation()
	assert.Equal(t, "Foo#bar", p.Join("Foo", ScopeInstance, "bar"))
	assert.Equal(t, "Foo.bar", p.Join("Foo", ScopeStatic, "bar"))
	assert.Equal(t, "Foo~bar", p.Join("Foo", ScopeInner, "bar"))
	assert.Equal(t, "Foo~bar", p.Join("Foo", ScopeGlobal, "bar"))
	assert.Equal(t, "bar", p.Join("", ScopeStatic, "bar"))

	custom := Punctuation{ScopeStatic: "::", ScopeInstance: "->"}
	assert.Equal(t, "Foo::bar", custom.Join("Foo", ScopeStatic, "bar"))
	assert.Equal(t, "Foo~bar", custom.Join("Foo", ScopeInner, "bar"))
}

func TestMeta_Within(t *testing.T) {
	outer := Meta{Range: &[2]int{100, 500}}
	assert.True(t, Meta{Range: &[2]int{120, 200}}.Within(outer))
	assert.False(t, Meta{Range: &[2]int{480, 520}}.Within(outer))
	assert.True(t, Meta{}.Within(outer))
}

func TestStore_Get(t *testing.T) {
	s := NewStore(rec("a", KindClass, "a.js", 1), rec("b", KindClass, "a.js", 2), rec("c", KindClass, "a.js", 3))
	s.Retain(Not(LongnameIs("b")))

	assert.Equal(t, "c", s.Get(2).Name)
	assert.Nil(t, s.Get(1))
	assert.Nil(t, s.Get(42))
	assert.True(t, And(KindIn(KindClass), LongnameIs("a"))(s.Get(0)))
}
