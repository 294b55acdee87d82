package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classydoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndRelativePaths(t *testing.T) {
	path := writeConfig(t, "input:\n  - doclets.json\nreadme: README.md\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, []string{filepath.Join(dir, "doclets.json")}, cfg.Input)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Destination)
	assert.Equal(t, filepath.Join(dir, "README.md"), cfg.Readme)
	assert.Equal(t, "Main Page", cfg.MainPageTitle)
	assert.Equal(t, "utf8", cfg.Encoding)
	require.NotNil(t, cfg.OutputSourceFiles)
	assert.True(t, *cfg.OutputSourceFiles)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("CLASSYDOC_TEST_ENTRY", "module:shapes")
	path := writeConfig(t, "input: [a.json]\nentry: ${CLASSYDOC_TEST_ENTRY}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "module:shapes", cfg.Entry)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		category errors.ErrorCategory
	}{
		{"malformed", "input: [", errors.CategoryConfig},
		{"no input", "destination: out\n", errors.CategoryValidation},
		{"blank input", "input: ['  ']\n", errors.CategoryValidation},
		{"duplicate separators", "input: [a.json]\npunctuation:\n  static: '#'\n", errors.CategoryValidation},
		{"unknown log level", "input: [a.json]\nlogging:\n  level: loud\n", errors.CategoryValidation},
		{"unknown log format", "input: [a.json]\nlogging:\n  format: xml\n", errors.CategoryValidation},
		{"wildcard subject", "input: [a.json]\nnotify:\n  nats_url: nats://localhost:4222\n  subject: 'docs.>'\n", errors.CategoryValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.category, errors.GetCategory(err))
		})
	}
}

func TestParse_OutputSourceFilesDisabled(t *testing.T) {
	cfg, err := Parse([]byte("input: [a.json]\noutput_source_files: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.GenerationOptions().OutputSourceFiles)
}

func TestParse_NotifyDefaults(t *testing.T) {
	cfg, err := Parse([]byte("input: [a.json]\nnotify:\n  nats_url: ' nats://localhost:4222 '\n"))
	require.NoError(t, err)
	assert.Equal(t, "nats://localhost:4222", cfg.Notify.NATSURL)
	assert.Equal(t, "classydoc.runs", cfg.Notify.Subject)

	cfg, err = Parse([]byte("input: [a.json]\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Notify.Subject)
}

func TestPunct_LayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte("input: [a.json]\npunctuation:\n  static: '::'\n"))
	require.NoError(t, err)

	p := cfg.Punct()
	assert.Equal(t, "::", p[doclet.ScopeStatic])
	assert.Equal(t, "#", p[doclet.ScopeInstance])
	assert.Equal(t, "~", p[doclet.ScopeInner])
}

func TestNormalizeLogging(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" WARNING "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("loud"))
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat(""))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classydoc.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "out"), cfg.Destination)
}
