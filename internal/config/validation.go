package config

import (
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
)

// Validate reports the first structural problem in cfg.
func Validate(cfg *Config) error {
	if len(cfg.Input) == 0 {
		return errors.ValidationError("at least one input file is required").
			WithContext("field", "input").Build()
	}
	for i, in := range cfg.Input {
		if in == "" {
			return errors.ValidationError("input path must not be empty").
				WithContext("field", "input").WithContext("index", i).Build()
		}
	}
	punct := cfg.Punct()
	seen := map[string]string{}
	for _, f := range []struct {
		field string
		scope doclet.Scope
	}{
		{"punctuation.static", doclet.ScopeStatic},
		{"punctuation.instance", doclet.ScopeInstance},
		{"punctuation.inner", doclet.ScopeInner},
	} {
		sep := punct[f.scope]
		if other, dup := seen[sep]; dup {
			return errors.ValidationError("scope separators must be distinct").
				WithContext("field", f.field).WithContext("conflicts_with", other).Build()
		}
		seen[sep] = f.field
	}
	if cfg.Destination == cfg.Tutorials && cfg.Tutorials != "" {
		return errors.ValidationError("destination must differ from the tutorials directory").
			WithContext("field", "destination").Build()
	}
	if cfg.Notify.Subject != "" && strings.ContainsAny(cfg.Notify.Subject, " \t*>") {
		return errors.ValidationError("notify subject must be a literal NATS subject").
			WithContext("field", "notify.subject").WithContext("subject", cfg.Notify.Subject).Build()
	}
	return nil
}
