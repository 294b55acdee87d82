package resolve

import (
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// Defaults backfills the default value of documented records from their literal
// initialiser when no default was declared.
func Defaults(gc *generation.Context) {
	n := 0
	for _, d := range gc.Store.Ordered() {
		if !d.Documented() || d.DefaultValue != "" || d.Meta.Code.Value == "" {
			continue
		}
		d.DefaultValue = d.Meta.Code.Value
		if d.Meta.Code.ValueKind != "" {
			d.DefaultValueType = d.Meta.Code.ValueKind
		}
		n++
	}
	gc.Logger.Debug("Backfilled default values", logfields.Count(n))
}
