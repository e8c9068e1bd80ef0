// Package config implements hierarchical configuration for syswiz.
// Precedence: defaults < user (~/.syswiz/config.toml) < env (SYSWIZ_*) < flags.
package config

// Config is the top-level configuration structure.
type Config struct {
	General GeneralConfig `toml:"general" mapstructure:"general"`
	UI      UIConfig      `toml:"ui" mapstructure:"ui"`
	History HistoryConfig `toml:"history" mapstructure:"history"`
}

// GeneralConfig holds core behavior knobs.
type GeneralConfig struct {
	// DNFPath optionally overrides the dnf front-end, e.g. "/usr/bin/dnf5"
	// or "dnf5 --color=never". Tokenized, never shell-interpreted.
	DNFPath  string `toml:"dnf_path" mapstructure:"dnf_path"`
	LogLevel string `toml:"log_level" mapstructure:"log_level"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme     string `toml:"theme" mapstructure:"theme"` // dark | light
	NerdIcons bool   `toml:"nerd_icons" mapstructure:"nerd_icons"`
}

// HistoryConfig holds execution journal settings.
type HistoryConfig struct {
	Enabled       bool   `toml:"enabled" mapstructure:"enabled"`
	DatabasePath  string `toml:"database_path" mapstructure:"database_path"`
	RetentionDays int    `toml:"retention_days" mapstructure:"retention_days"`
}
