package config

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DNFPath:  "",
			LogLevel: "info",
		},
		UI: UIConfig{
			Theme:     "dark",
			NerdIcons: false,
		},
		History: HistoryConfig{
			Enabled:       true,
			DatabasePath:  "", // resolved to ~/.syswiz/history.db at open time
			RetentionDays: 90,
		},
	}
}
