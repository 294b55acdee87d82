package resolve

import (
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// Links registers a URL for every remaining record and attaches hosted source links.
func Links(gc *generation.Context) {
	for _, d := range gc.Store.Ordered() {
		gc.Links.CreateLink(d)
		if gc.SourceLink != nil && d.Meta.HasPosition() {
			d.SourceURL = gc.SourceLink(d)
		}
	}
	gc.Logger.Debug("Registered links", logfields.Count(gc.Store.Len()))
}
