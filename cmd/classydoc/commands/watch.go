package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/classydoc/internal/config"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
	Refresh  time.Duration `help:"Also regenerate on this interval even without changes (0 disables)" default:"0s"`
}

func (w *WatchCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig(global)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The first pass may fail on a half-edited input; keep watching regardless.
	if _, err := generate(ctx, cfg, global.Logger); err != nil {
		global.Logger.Error("Initial generation failed", logfields.Error(err))
	}

	watcher, err := watch.New(watchedPaths(root.Config, cfg), w.Debounce, global.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if w.Refresh > 0 {
		sched, err := watch.NewScheduler(global.Logger)
		if err != nil {
			return err
		}
		if _, err := sched.Every(w.Refresh, "refresh", watcher.Trigger); err != nil {
			return err
		}
		sched.Start()
		defer func() { _ = sched.Stop() }()
	}

	global.Logger.Info("Watching for changes", logfields.Count(len(cfg.Input)))
	return watcher.Run(ctx, func(ctx context.Context) error {
		// Reload configuration so edits to it take effect; each run gets a fresh context.
		next, err := root.loadConfig(global)
		if err != nil {
			return err
		}
		_, err = generate(ctx, next, global.Logger)
		return err
	})
}

// watchedPaths lists the configuration file and every input it names.
func watchedPaths(configPath string, cfg *config.Config) []string {
	paths := append([]string{configPath}, cfg.Input...)
	return append(paths, cfg.Readme, cfg.Tutorials, cfg.Templates)
}
