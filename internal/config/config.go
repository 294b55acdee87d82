// Package config loads the classydoc YAML configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/generation"
)

// Config is the complete configuration of a documentation run.
type Config struct {
	// Input lists doclet JSON dumps (jsdoc -X output).
	Input       []string `yaml:"input"`
	Destination string   `yaml:"destination"`
	Readme      string   `yaml:"readme,omitempty"`
	Tutorials   string   `yaml:"tutorials,omitempty"`
	Templates   string   `yaml:"templates,omitempty"`

	Entry         string `yaml:"entry,omitempty"`
	MainPageTitle string `yaml:"main_page_title,omitempty"`
	// OutputSourceFiles defaults to true when omitted.
	OutputSourceFiles *bool  `yaml:"output_source_files,omitempty"`
	UseLongnameInNav  bool   `yaml:"use_longname_in_nav"`
	IncludePrivate    bool   `yaml:"include_private"`
	Encoding          string `yaml:"encoding,omitempty"`

	Punctuation PunctuationConfig `yaml:"punctuation"`
	SourceLink  SourceLinkConfig  `yaml:"source_link"`
	SearchIndex string            `yaml:"search_index,omitempty"`
	MetricsFile string            `yaml:"metrics_file,omitempty"`
	Notify      NotifyConfig      `yaml:"notify"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// NotifyConfig publishes a run event to NATS after every generation.
type NotifyConfig struct {
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// PunctuationConfig overrides the scope separators used in longnames.
type PunctuationConfig struct {
	Static   string `yaml:"static,omitempty"`
	Instance string `yaml:"instance,omitempty"`
	Inner    string `yaml:"inner,omitempty"`
}

// SourceLinkConfig links records to a git host instead of local source pages.
type SourceLinkConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Repository string `yaml:"repository,omitempty"`
	Remote     string `yaml:"remote,omitempty"`
	Ref        string `yaml:"ref,omitempty"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Load reads the configuration at configPath. Variables from .env files are
// loaded first and ${VAR} references in the file are expanded. Relative paths
// are resolved against the directory holding the file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			WithContext("path", configPath).Build()
	}
	// #nosec G304 -- the configuration path is chosen by the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(configPath))
	return cfg, nil
}

// Parse decodes, normalizes, defaults and validates YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration").Build()
	}
	if err := checkLogging(cfg.Logging); err != nil {
		return nil, err
	}
	normalize(&cfg)
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i, in := range c.Input {
		c.Input[i] = abs(in)
	}
	c.Destination = abs(c.Destination)
	c.Readme = abs(c.Readme)
	c.Tutorials = abs(c.Tutorials)
	c.Templates = abs(c.Templates)
	c.SearchIndex = abs(c.SearchIndex)
	c.MetricsFile = abs(c.MetricsFile)
	c.SourceLink.Repository = abs(c.SourceLink.Repository)
}

// GenerationOptions returns the switches a run consumes.
func (c *Config) GenerationOptions() generation.Options {
	return generation.Options{
		Entry:             c.Entry,
		MainPageTitle:     c.MainPageTitle,
		OutputSourceFiles: c.OutputSourceFiles == nil || *c.OutputSourceFiles,
		UseLongnameInNav:  c.UseLongnameInNav,
		IncludePrivate:    c.IncludePrivate,
		Encoding:          c.Encoding,
		Input:             c.Input,
		Destination:       c.Destination,
		TemplateDir:       c.Templates,
		Readme:            c.Readme,
		Tutorials:         c.Tutorials,
		SearchIndex:       c.SearchIndex,
	}
}

// Punct returns the configured scope separators layered over the defaults.
func (c *Config) Punct() doclet.Punctuation {
	p := doclet.DefaultPunctuation()
	if c.Punctuation.Static != "" {
		p[doclet.ScopeStatic] = c.Punctuation.Static
	}
	if c.Punctuation.Instance != "" {
		p[doclet.ScopeInstance] = c.Punctuation.Instance
	}
	if c.Punctuation.Inner != "" {
		p[doclet.ScopeInner] = c.Punctuation.Inner
	}
	return p
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).Build()
	}

	sources := true
	example := Config{
		Input:             []string{"doclets.json"},
		Destination:       "./out",
		Readme:            "README.md",
		Tutorials:         "./tutorials",
		MainPageTitle:     "Main Page",
		OutputSourceFiles: &sources,
		Encoding:          "utf8",
		Punctuation:       PunctuationConfig{Static: ".", Instance: "#", Inner: "~"},
		SourceLink:        SourceLinkConfig{Remote: "origin"},
		Logging:           LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	header := "# classydoc configuration\n# Generate input with: jsdoc -X src > doclets.json\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).Build()
	}
	return nil
}
