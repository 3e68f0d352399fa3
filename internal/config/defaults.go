package config

import "time"

const (
	defaultResourceDir = "resources"
	// DefaultVersion is reported when no version is configured.
	DefaultVersion              = "N/A"
	defaultFetchTimeout         = 30 * time.Second
	defaultServerRequestTimeout = 15 * time.Second
)

// applyDefaults fills the fields that every source left empty.
// Adapter.RequestTimeout is only defaulted when unset; a negative value
// survives and means "no client timeout".
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ResourceDir == "" {
		cfg.App.ResourceDir = defaultResourceDir
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultFetchTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultServerRequestTimeout
	}
}
