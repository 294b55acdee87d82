package commands

import (
	"context"
	"os/signal"
	"syscall"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Input       []string `arg:"" optional:"" type:"path" help:"Doclet JSON files (jsdoc -X output); overrides the config file"`
	Destination string   `short:"d" type:"path" help:"Output directory; overrides the config file"`
	Entry       string   `help:"Symbol whose page becomes the home page"`
	NoSource    bool     `name:"no-source" help:"Do not generate pretty-printed source pages"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig(global)
	if err != nil {
		return err
	}
	if len(g.Input) > 0 {
		cfg.Input = g.Input
	}
	if g.Destination != "" {
		cfg.Destination = g.Destination
	}
	if g.Entry != "" {
		cfg.Entry = g.Entry
	}
	if g.NoSource {
		off := false
		cfg.OutputSourceFiles = &off
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, err = generate(ctx, cfg, global.Logger)
	return err
}
