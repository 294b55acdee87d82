package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/searchindex"
)

// SearchCmd implements the 'search' command.
type SearchCmd struct {
	Query string `arg:"" help:"Substring of a symbol name or longname"`
	Index string `type:"path" help:"Search index path; defaults to search_index from the config file"`
	Limit int    `short:"n" help:"Maximum number of results" default:"20"`
}

func (s *SearchCmd) Run(global *Global, root *CLI) error {
	dbPath := s.Index
	if dbPath == "" {
		cfg, err := root.loadConfig(global)
		if err != nil {
			return err
		}
		dbPath = cfg.SearchIndex
	}
	if dbPath == "" {
		return errors.ConfigError("no search index configured (set search_index or pass --index)").Build()
	}
	return runSearch(context.Background(), os.Stdout, dbPath, s.Query, s.Limit)
}

func runSearch(ctx context.Context, w io.Writer, dbPath, query string, limit int) error {
	if _, err := os.Stat(dbPath); err != nil {
		return errors.WrapError(err, errors.CategoryNotFound, "search index not found").
			WithContext("path", dbPath).Build()
	}
	idx, err := searchindex.Open(dbPath)
	if err != nil {
		return errors.WrapError(err, errors.CategoryIndex, "failed to open search index").
			WithContext("path", dbPath).Build()
	}
	defer func() { _ = idx.Close() }()

	hits, err := idx.Search(ctx, query, limit)
	if err != nil {
		return errors.WrapError(err, errors.CategoryIndex, "search failed").Build()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, h := range hits {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Longname, h.Kind, h.URL)
	}
	return tw.Flush()
}
