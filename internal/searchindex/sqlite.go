// Package searchindex persists the generated symbol table to SQLite so that
// search front-ends can query it without parsing HTML.
package searchindex

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one indexed symbol.
type Entry struct {
	Longname string
	Name     string
	Kind     string
	MemberOf string
	URL      string
	Summary  string
}

// Index is a SQLite-backed symbol index.
type Index struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the index at dbPath. Use ":memory:" for a throwaway index.
func Open(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	idx := &Index{db: db}
	if err := idx.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return idx, nil
}

func (i *Index) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		generated_at INTEGER NOT NULL,
		symbols INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS symbols (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		longname TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		memberof TEXT NOT NULL,
		url TEXT NOT NULL,
		summary TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
	CREATE INDEX IF NOT EXISTS idx_symbols_longname ON symbols(longname);
	`
	_, err := i.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (i *Index) Close() error { return i.db.Close() }

// Replace swaps the indexed symbols for entries and records the run.
func (i *Index) Replace(ctx context.Context, runID string, entries []Entry) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM symbols"); err != nil {
		return fmt.Errorf("clear symbols: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO symbols (longname, name, kind, memberof, url, summary) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Longname, e.Name, e.Kind, e.MemberOf, e.URL, e.Summary); err != nil {
			return fmt.Errorf("insert symbol %s: %w", e.Longname, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO runs (run_id, generated_at, symbols) VALUES (?, ?, ?)",
		runID, time.Now().Unix(), len(entries),
	); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return tx.Commit()
}

// Search returns up to limit symbols whose name or longname contains query,
// exact name matches first.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + escapeLike(query) + "%"
	rows, err := i.db.QueryContext(ctx, `
		SELECT longname, name, kind, memberof, url, COALESCE(summary, '')
		FROM symbols
		WHERE name LIKE ? ESCAPE '\' OR longname LIKE ? ESCAPE '\'
		ORDER BY (name = ?) DESC, longname
		LIMIT ?`,
		pattern, pattern, query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Longname, &e.Name, &e.Kind, &e.MemberOf, &e.URL, &e.Summary); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// LastRun returns the id of the most recent run written to the index.
func (i *Index) LastRun(ctx context.Context) (string, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var id string
	err := i.db.QueryRowContext(ctx, "SELECT run_id FROM runs ORDER BY generated_at DESC, rowid DESC LIMIT 1").Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query runs: %w", err)
	}
	return id, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
