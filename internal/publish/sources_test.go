package publish

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	ferrors "git.home.luguber.info/inful/classydoc/internal/foundation/errors"
)

func TestCommonPathPrefix(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"single file keeps its name", []string{"/src/lib/a.js"}, "/src/lib/"},
		{"shared parent", []string{"/src/lib/a.js", "/src/util.js"}, "/src/"},
		{"partial segment is not shared", []string{"/src/lib/a.js", "/src/library/b.js"}, "/src/"},
		{"relative files", []string{"a.js", "b.js"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commonPathPrefix(tt.paths))
		})
	}
}

func TestShortenSources(t *testing.T) {
	store := doclet.NewStore(
		&doclet.Doclet{Name: "a", Meta: doclet.Meta{Path: "/src/shapes", Filename: "square.js", Line: 1}},
		&doclet.Doclet{Name: "b", Meta: doclet.Meta{Path: "/src", Filename: "util.js", Line: 1}},
		&doclet.Doclet{Name: "c", Meta: doclet.Meta{Path: "/src/shapes", Filename: "square.js", Line: 9}},
		&doclet.Doclet{Name: "d"},
	)

	files := shortenSources(store)
	require.Len(t, files, 2)
	assert.Equal(t, "util.js", files[0].shortened)
	assert.Equal(t, "shapes/square.js", files[1].shortened)
	assert.Equal(t, "shapes/square.js", store.All()[2].Meta.ShortPath)
	assert.Empty(t, store.All()[3].Meta.ShortPath)
}

func TestWriteFile(t *testing.T) {
	dest := t.TempDir()

	full, err := WriteFile(dest, "nested/page.html", []byte("<p>hi</p>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "nested", "page.html"), full)

	_, err = WriteFile(dest, "../escape.html", nil)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	_, err = WriteFile("", "page.html", nil)
	require.Error(t, err)
}
