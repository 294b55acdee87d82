// Package watch regenerates documentation when its inputs change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// DefaultDebounce coalesces bursts of writes into one regeneration.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors input files and directories.
type Watcher struct {
	watcher  *fsnotify.Watcher
	paths    []string
	files    map[string]bool
	dirs     map[string]bool
	debounce time.Duration
	logger   *slog.Logger

	// last is the input fingerprint of the most recent successful run.
	last    string
	trigger chan struct{}
}

// New watches paths. Files are watched through their parent directory so editors
// that replace files on save are still noticed; directories are watched directly.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		watcher:  fw,
		paths:    paths,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: debounce,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve path %s: %w", p, err)
		}
		target := abs
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			w.dirs[abs] = true
		} else {
			w.files[abs] = true
			target = filepath.Dir(abs)
		}
		if err := fw.Add(target); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", target, err)
		}
	}
	w.last, _ = Fingerprint(paths)
	return w, nil
}

// Trigger requests a regeneration even if no input changed. It never blocks;
// requests made while one is pending are merged.
func (w *Watcher) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Close stops watching.
func (w *Watcher) Close() error { return w.watcher.Close() }

// Run calls onChange after every debounced burst of relevant events until ctx is
// canceled. Bursts that leave the inputs byte-identical are skipped unless a
// Trigger is pending. Errors from onChange are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context) error) error {
	// fire is nil while no change is pending.
	var fire <-chan time.Time
	forced := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Input change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			fire = time.After(w.debounce)
		case <-w.trigger:
			forced = true
			fire = time.After(w.debounce)
		case <-fire:
			fire = nil
			fp, err := Fingerprint(w.paths)
			if err == nil && fp == w.last && !forced {
				w.logger.Debug("Inputs unchanged; skipping regeneration")
				continue
			}
			forced = false
			if err := onChange(ctx); err != nil {
				w.logger.Error("Regeneration failed", logfields.Error(err))
				continue
			}
			w.last = fp
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Remove) {
		return false
	}
	if w.files[event.Name] {
		return true
	}
	return w.dirs[filepath.Dir(event.Name)] || w.dirs[event.Name]
}
