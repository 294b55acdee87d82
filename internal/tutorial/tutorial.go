// Package tutorial loads a directory of tutorial documents into a tree.
//
// Each file is one tutorial named after its base name. Markdown files (.md,
// .markdown) are rendered to HTML; .html and .htm files are used verbatim. An
// optional YAML frontmatter block sets the title and lists child tutorials:
//
//	---
//	title: Getting started
//	children: [install, first-page]
//	---
package tutorial

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/frontmatter"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/markdown"
)

// Tutorial is one node of the tutorial tree.
type Tutorial struct {
	Name     string
	Title    string
	Content  string
	Parent   *Tutorial
	Children []*Tutorial
}

// Tree is the set of loaded tutorials. Roots are the tutorials no other
// tutorial claims as a child.
type Tree struct {
	Roots  []*Tutorial
	byName map[string]*Tutorial
}

// Get returns the named tutorial.
func (t *Tree) Get(name string) (*Tutorial, bool) {
	if t == nil {
		return nil, false
	}
	tut, ok := t.byName[name]
	return tut, ok
}

// Walk visits every tutorial depth first, parents before children.
func (t *Tree) Walk(fn func(*Tutorial)) {
	if t == nil {
		return
	}
	var visit func([]*Tutorial)
	visit = func(ts []*Tutorial) {
		for _, tut := range ts {
			fn(tut)
			visit(tut.Children)
		}
	}
	visit(t.Roots)
}

// Names returns the names of the root tutorials.
func (t *Tree) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.Roots))
	for _, r := range t.Roots {
		names = append(names, r.Name)
	}
	return names
}

type header struct {
	Title    string   `yaml:"title"`
	Children []string `yaml:"children"`
}

var extensions = []string{".md", ".markdown", ".html", ".htm"}

// Load reads every tutorial file below dir. A missing dir yields an empty tree.
func Load(dir string, md *markdown.Renderer, logger *slog.Logger) (*Tree, error) {
	tree := &Tree{byName: make(map[string]*Tutorial)}
	if dir == "" {
		return tree, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Warn("Tutorials directory not found", logfields.Path(dir))
		return tree, nil
	}

	var order []*Tutorial
	childNames := make(map[string][]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if d.IsDir() || !slices.Contains(extensions, ext) {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if _, dup := tree.byName[name]; dup {
			logger.Warn("Duplicate tutorial name ignored", logfields.Name(name), logfields.Path(path))
			return nil
		}

		tut, children, err := loadFile(path, name, ext, md)
		if err != nil {
			return err
		}
		tree.byName[name] = tut
		childNames[name] = children
		order = append(order, tut)
		return nil
	})
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read tutorials").
			WithContext("path", dir).Build()
	}

	for _, tut := range order {
		for _, childName := range childNames[tut.Name] {
			child, ok := tree.byName[childName]
			switch {
			case !ok:
				logger.Warn("Unknown child tutorial", logfields.Name(tut.Name), logfields.Target(childName))
			case child.Parent != nil || child == tut || isAncestor(child, tut):
				logger.Warn("Tutorial already has a parent", logfields.Name(childName), logfields.Target(tut.Name))
			default:
				child.Parent = tut
				tut.Children = append(tut.Children, child)
			}
		}
	}
	for _, tut := range order {
		if tut.Parent == nil {
			tree.Roots = append(tree.Roots, tut)
		}
	}
	logger.Debug("Loaded tutorials", logfields.Count(len(order)), logfields.Path(dir))
	return tree, nil
}

func loadFile(path, name, ext string, md *markdown.Renderer) (*Tutorial, []string, error) {
	// #nosec G304 -- path comes from walking the configured tutorials directory
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read tutorial").
			WithContext("path", path).Build()
	}
	var h header
	body, err := frontmatter.Decode(raw, &h)
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryInput, "invalid tutorial frontmatter").
			WithContext("path", path).Build()
	}

	tut := &Tutorial{Name: name, Title: h.Title, Content: string(body)}
	if ext == ".md" || ext == ".markdown" {
		if tut.Title == "" {
			tut.Title = md.FirstHeading(body)
		}
		html, err := md.Render(body)
		if err != nil {
			return nil, nil, errors.WrapError(err, errors.CategoryRender, "failed to render tutorial").
				WithContext("path", path).Build()
		}
		tut.Content = html
	}
	if tut.Title == "" {
		tut.Title = name
	}
	return tut, h.Children, nil
}

// isAncestor reports whether a is an ancestor of t.
func isAncestor(a, t *Tutorial) bool {
	for p := t.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}
