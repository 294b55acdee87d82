package publish

import (
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/nav"
	"git.home.luguber.info/inful/classydoc/internal/page"
	"git.home.luguber.info/inful/classydoc/internal/render"
	"git.home.luguber.info/inful/classydoc/internal/tutorial"
)

// State is the mutable state threaded through the stages of one run.
type State struct {
	GC *generation.Context
	// Renderer defaults to the embedded templates when nil.
	Renderer  render.Renderer
	Tutorials *tutorial.Tree
	Report    *Report

	home *page.Page
	nav  *nav.Nav
}

// NewState returns the state for a run over gc.
func NewState(gc *generation.Context, renderer render.Renderer) *State {
	return &State{
		GC:       gc,
		Renderer: renderer,
		Report:   newReport(gc.RunID),
	}
}
