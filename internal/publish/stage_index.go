package publish

import (
	"context"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/searchindex"
)

// stageIndex replaces the search index contents with this run's symbols. A
// failing index never invalidates the written pages, so errors are warnings.
func stageIndex(ctx context.Context, s *State) error {
	gc := s.GC
	dbPath := gc.Options.SearchIndex
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return NewWarnStageError(StageIndex, errors.WrapError(err, errors.CategoryFileSystem, "failed to create index directory").
			WithContext("path", dbPath).Build())
	}
	idx, err := searchindex.Open(dbPath)
	if err != nil {
		return NewWarnStageError(StageIndex, errors.WrapError(err, errors.CategoryIndex, "failed to open search index").
			WithContext("path", dbPath).Build())
	}
	defer func() { _ = idx.Close() }()

	entries := indexEntries(s)
	if err := idx.Replace(ctx, gc.RunID, entries); err != nil {
		return NewWarnStageError(StageIndex, errors.WrapError(err, errors.CategoryIndex, "failed to write search index").
			WithContext("path", dbPath).Build())
	}
	gc.Logger.Info("Search index updated", logfields.Path(dbPath), logfields.Count(len(entries)))
	return nil
}

func indexEntries(s *State) []searchindex.Entry {
	gc := s.GC
	var entries []searchindex.Entry
	for _, d := range gc.Store.Ordered(doclet.Documented) {
		if d.Kind.IsSynthetic() || d.Longname == "" {
			continue
		}
		u, ok := gc.Links.URL(d.Longname)
		if !ok {
			continue
		}
		entries = append(entries, searchindex.Entry{
			Longname: d.Longname,
			Name:     d.Name,
			Kind:     string(d.Kind),
			MemberOf: d.MemberOf,
			URL:      u,
			Summary:  d.Summary,
		})
	}
	return entries
}
