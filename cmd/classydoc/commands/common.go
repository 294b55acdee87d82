// Package commands implements the classydoc command line.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/classydoc/internal/config"
	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/metrics"
	"git.home.luguber.info/inful/classydoc/internal/notify"
	"git.home.luguber.info/inful/classydoc/internal/publish"
	"git.home.luguber.info/inful/classydoc/internal/sourcelink"
)

// Global is shared with every subcommand.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" default:"classydoc.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text or json); overrides the config file"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate documentation from doclet input"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate documentation whenever an input changes"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Search   SearchCmd   `cmd:"" help:"Query the symbol search index"`
}

// AfterApply runs after flag parsing and sets up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(newLogger(os.Stderr, config.NormalizeLogFormat(c.LogFormat), c.level(config.LogLevelInfo)))
	return nil
}

func (c *CLI) level(configured config.LogLevel) slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return configured.SlogLevel()
}

// loadConfig loads the configuration file and re-applies logging from it.
// Command-line flags keep precedence over the file.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	format := cfg.Logging.Format
	if c.LogFormat != "" {
		format = config.NormalizeLogFormat(c.LogFormat)
	}
	g.Logger = newLogger(os.Stderr, format, c.level(cfg.Logging.Level))
	slog.SetDefault(g.Logger)
	return cfg, nil
}

func newLogger(w io.Writer, format config.LogFormat, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// generate runs one documentation pass for cfg. Metrics are written to the
// configured textfile even when the run fails.
func generate(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*publish.Report, error) {
	options := []generation.Option{
		generation.WithLogger(logger),
		generation.WithPunctuation(cfg.Punct()),
	}

	var prom *metrics.PrometheusRecorder
	if cfg.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		options = append(options, generation.WithRecorder(prom))
	}

	if cfg.SourceLink.Enabled {
		resolver, err := sourcelink.Detect(sourcelink.Options{
			Repository: cfg.SourceLink.Repository,
			Remote:     cfg.SourceLink.Remote,
			Ref:        cfg.SourceLink.Ref,
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("Linking sources to hosting service", slog.String("forge", string(resolver.Forge())))
		options = append(options, generation.WithSourceLink(func(d *doclet.Doclet) string { return resolver.URL(d) }))
	}

	gc := generation.New(nil, cfg.GenerationOptions(), options...)
	report, err := publish.Run(ctx, publish.NewState(gc, nil))

	if prom != nil {
		if werr := prom.WriteTextfile(cfg.MetricsFile); werr != nil {
			logger.Warn("Failed to write metrics textfile", logfields.Path(cfg.MetricsFile), logfields.Error(werr))
		}
	}
	if cfg.Notify.NATSURL != "" {
		announce(cfg, report, err, logger)
	}
	return report, err
}

// announce publishes the run outcome. Notification failures never fail the run.
func announce(cfg *config.Config, report *publish.Report, runErr error, logger *slog.Logger) {
	pub, err := notify.Connect(cfg.Notify.NATSURL, cfg.Notify.Subject, logger)
	if err != nil {
		logger.Warn("Run notification skipped", logfields.Error(err))
		return
	}
	defer pub.Close()
	if err := pub.Publish(notify.EventFromReport(report, cfg.Destination, runErr)); err != nil {
		logger.Warn("Run notification failed", logfields.Error(err))
	}
}
