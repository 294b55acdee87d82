package resolve

import (
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/generation"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
)

// Prune removes records that never appear in output: undocumented, ignored,
// members of anonymous scopes and, unless requested, private symbols.
func Prune(gc *generation.Context) {
	dropped := gc.Store.Retain(func(d *doclet.Doclet) bool {
		if !d.Documented() || d.MemberOf == "<anonymous>" {
			return false
		}
		return gc.Options.IncludePrivate || d.Access != "private"
	})
	gc.Logger.Debug("Pruned records", logfields.Count(dropped))
}

// ModuleSymbols attaches classes and functions exported directly by a module
// (sharing its longname) to the module, renamed for display as require() calls.
func ModuleSymbols(gc *generation.Context) {
	byLongname := make(map[string][]*doclet.Doclet)
	for _, d := range gc.Store.Ordered() {
		if strings.HasPrefix(d.Longname, "module:") && d.Kind != doclet.KindModule {
			byLongname[d.Longname] = append(byLongname[d.Longname], d)
		}
	}
	for _, m := range gc.Store.Ordered(doclet.KindIn(doclet.KindModule)) {
		m.ModuleSymbols = nil
		for _, sym := range byLongname[m.Longname] {
			if sym.Description == "" && sym.Kind != doclet.KindClass {
				continue
			}
			c := gc.Store.Detached(sym.Clone())
			if c.Kind == doclet.KindClass || c.Kind == doclet.KindFunction {
				c.Name = `(require("` + strings.TrimPrefix(c.Name, "module:") + `"))`
			}
			m.ModuleSymbols = append(m.ModuleSymbols, c)
		}
	}
}
