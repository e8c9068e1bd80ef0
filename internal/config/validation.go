package config

import "fmt"

// Validate checks semantic constraints the type system cannot express.
func Validate(cfg Config) error {
	switch cfg.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be dark or light, got %q", cfg.UI.Theme)
	}

	switch cfg.General.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("general.log_level %q is not a known level", cfg.General.LogLevel)
	}

	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must be >= 0, got %d", cfg.History.RetentionDays)
	}
	return nil
}
