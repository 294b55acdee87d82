package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/classydoc/cmd/classydoc/commands"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("classydoc"),
		kong.Description("Generate HTML API documentation from JSDoc doclet dumps."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, &cli)
	if err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		os.Exit(adapter.Report(os.Stderr, err))
	}
}
