package publish

import (
	"os"
	"path"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

type sourceFile struct {
	resolved  string
	shortened string
}

// shortenSources collects every source path in store order (by directory,
// then file name), strips their common directory prefix and stores the result
// in each record's ShortPath.
func shortenSources(store *doclet.Store) []sourceFile {
	var files []sourceFile
	index := make(map[string]int)
	for _, d := range store.Ordered() {
		p := d.Meta.SourcePath()
		if p == "" {
			continue
		}
		if _, ok := index[p]; !ok {
			index[p] = len(files)
			files = append(files, sourceFile{resolved: p})
		}
	}
	if len(files) == 0 {
		return nil
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.resolved
	}
	prefix := commonPathPrefix(paths)
	for i := range files {
		files[i].shortened = strings.ReplaceAll(strings.TrimPrefix(files[i].resolved, prefix), `\`, "/")
	}
	for _, d := range store.All() {
		if i, ok := index[d.Meta.SourcePath()]; ok {
			d.Meta.ShortPath = files[i].shortened
		}
	}
	return files
}

// commonPathPrefix returns the directory shared by all paths, with a trailing
// separator, or "" when they share none.
func commonPathPrefix(paths []string) string {
	dirSegments := func(p string) []string {
		dir := path.Dir(p)
		if dir == "." {
			return nil
		}
		return strings.Split(dir, "/")
	}
	common := dirSegments(paths[0])
	for _, p := range paths[1:] {
		segs := dirSegments(p)
		n := 0
		for n < len(common) && n < len(segs) && common[n] == segs[n] {
			n++
		}
		common = common[:n]
	}
	if len(common) == 0 {
		return ""
	}
	prefix := strings.Join(common, "/")
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// buildSourcePages creates one page per readable source file. Unreadable files
// are logged and skipped without failing the run.
func buildSourcePages(s *State, files []sourceFile) error {
	gc := s.GC
	enc, err := htmlindex.Get(gc.Options.Encoding)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "unsupported source encoding").
			WithContext("encoding", gc.Options.Encoding).Build()
	}

	for _, f := range files {
		// #nosec G304 -- source paths come from the doclet input
		raw, err := os.ReadFile(f.resolved)
		if err == nil {
			raw, err = enc.NewDecoder().Bytes(raw)
		}
		if err != nil {
			gc.Logger.Error("Error while generating source file",
				logfields.Path(f.resolved), logfields.Error(err))
			gc.Recorder.IncSkippedSources()
			continue
		}

		gc.Links.Register(f.shortened, gc.Links.UniqueFilename(f.shortened))
		src := gc.Store.Detached(&doclet.Doclet{Name: f.shortened, Kind: doclet.KindSource, Code: string(raw)})
		gc.Pages.Page(src)
	}
	return nil
}
