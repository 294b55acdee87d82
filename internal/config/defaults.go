package config

import "strings"

const (
	defaultDestination   = "./out"
	defaultMainPageTitle = "Main Page"
	defaultEncoding      = "utf8"
	defaultRemote        = "origin"
	defaultNotifySubject = "classydoc.runs"
)

func normalize(cfg *Config) {
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
	cfg.Encoding = strings.ToLower(strings.TrimSpace(cfg.Encoding))
	cfg.Entry = strings.TrimSpace(cfg.Entry)
	cfg.Notify.NATSURL = strings.TrimSpace(cfg.Notify.NATSURL)
	for i, in := range cfg.Input {
		cfg.Input[i] = strings.TrimSpace(in)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Destination == "" {
		cfg.Destination = defaultDestination
	}
	if cfg.MainPageTitle == "" {
		cfg.MainPageTitle = defaultMainPageTitle
	}
	if cfg.Encoding == "" {
		cfg.Encoding = defaultEncoding
	}
	if cfg.OutputSourceFiles == nil {
		v := true
		cfg.OutputSourceFiles = &v
	}
	if cfg.SourceLink.Enabled && cfg.SourceLink.Remote == "" {
		cfg.SourceLink.Remote = defaultRemote
	}
	if cfg.Notify.NATSURL != "" && cfg.Notify.Subject == "" {
		cfg.Notify.Subject = defaultNotifySubject
	}
	if cfg.SourceLink.Enabled && cfg.SourceLink.Repository == "" {
		cfg.SourceLink.Repository = "."
	}
}
