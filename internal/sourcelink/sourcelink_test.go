package sourcelink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
)

func rec(path, file string, line int) *doclet.Doclet {
	return &doclet.Doclet{Meta: doclet.Meta{Path: path, Filename: file, Line: line}}
}

func TestFromRemote(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		ref    string
		want   string
	}{
		{"github ssh", "git@github.com:acme/shapes.git", "main", "https://github.com/acme/shapes/blob/main/src/a.js#L12"},
		{"gitlab https", "https://gitlab.com/acme/shapes.git", "v1", "https://gitlab.com/acme/shapes/-/blob/v1/src/a.js#L12"},
		{"bitbucket", "https://bitbucket.org/acme/shapes", "main", "https://bitbucket.org/acme/shapes/src/main/src/a.js#lines-12"},
		{"forgejo branch", "https://git.example.org/acme/shapes.git", "main", "https://git.example.org/acme/shapes/src/branch/main/src/a.js#L12"},
		{"forgejo commit", "ssh://git@git.example.org/acme/shapes.git", "0123abcd", "https://git.example.org/acme/shapes/src/commit/0123abcd/src/a.js#L12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromRemote(tt.remote, tt.ref, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.URL(rec("src", "a.js", 12)))
		})
	}
}

func TestFromRemote_RejectsLocalPaths(t *testing.T) {
	_, err := FromRemote("/srv/repos/shapes.git", "main", "")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestURL_RelativeToRoot(t *testing.T) {
	r, err := FromRemote("https://github.com/acme/shapes", "main", "/work/shapes")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/acme/shapes/blob/main/lib/b.js#L3", r.URL(rec("/work/shapes/lib", "b.js", 3)))
	assert.Empty(t, r.URL(rec("/elsewhere", "c.js", 1)), "files outside the repository have no link")
	assert.Empty(t, r.URL(&doclet.Doclet{}), "records without position have no link")
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.js"), []byte("function a() {}\n"), 0o600))
	w, err := repo.Worktree()
	require.NoError(t, err)
	_, err = w.Add(".")
	require.NoError(t, err)
	commit, err := w.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com"},
	})
	require.NoError(t, err)
	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{Name: "origin", URLs: []string{"git@github.com:acme/shapes.git"}})
	require.NoError(t, err)

	r, err := Detect(Options{Repository: filepath.Join(dir, "src")})
	require.NoError(t, err)

	assert.Equal(t, ForgeGitHub, r.Forge())
	assert.Equal(t, "https://github.com/acme/shapes/blob/"+commit.String()+"/src/a.js#L1",
		r.URL(rec(filepath.Join(dir, "src"), "a.js", 1)))
}

func TestDetect_MissingRemote(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = Detect(Options{Repository: dir})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryGit))
}
