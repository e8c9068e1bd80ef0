package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := DefaultConfig()
	if cfg.UI.Theme != def.UI.Theme {
		t.Errorf("theme = %q, want default %q", cfg.UI.Theme, def.UI.Theme)
	}
	if cfg.History.RetentionDays != def.History.RetentionDays {
		t.Errorf("retention = %d, want %d", cfg.History.RetentionDays, def.History.RetentionDays)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[ui]\ntheme = \"light\"\n\n[history]\nretention_days = 7\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.History.RetentionDays != 7 {
		t.Errorf("retention = %d, want 7", cfg.History.RetentionDays)
	}
	// Untouched keys keep defaults.
	if cfg.General.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.General.LogLevel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYSWIZ_THEME", "dark")
	t.Setenv("SYSWIZ_HISTORY_RETENTION_DAYS", "30")

	cfg, err := Load(LoadOptions{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want env override dark", cfg.UI.Theme)
	}
	if cfg.History.RetentionDays != 30 {
		t.Errorf("retention = %d, want 30", cfg.History.RetentionDays)
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("SYSWIZ_LOG_LEVEL", "debug")

	cfg, err := Load(LoadOptions{
		ConfigPath:    filepath.Join(t.TempDir(), "missing.toml"),
		FlagOverrides: map[string]any{"general.log_level": "error"},
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.General.LogLevel != "error" {
		t.Errorf("log_level = %q, want flag override error", cfg.General.LogLevel)
	}
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	t.Setenv("SYSWIZ_HISTORY_RETENTION_DAYS", "soon")
	_, err := Load(LoadOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	if err == nil {
		t.Fatal("expected an error for a non-integer retention")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.UI.Theme = "solarized"
	if err := Validate(cfg); err == nil {
		t.Error("unknown theme accepted")
	}

	cfg = DefaultConfig()
	cfg.History.RetentionDays = -1
	if err := Validate(cfg); err == nil {
		t.Error("negative retention accepted")
	}
}

func TestWriteAndReadBackValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteValue(path, "ui.theme", "light"); err != nil {
		t.Fatalf("WriteValue failed: %v", err)
	}
	if err := WriteValue(path, "history.retention_days", 14); err != nil {
		t.Fatalf("WriteValue (second key) failed: %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "light" || cfg.History.RetentionDays != 14 {
		t.Errorf("round trip mismatch: %+v", cfg)
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("ui.nerd_icons", "true")
	if err != nil || v != true {
		t.Errorf("ParseValue(bool) = %v, %v", v, err)
	}
	if _, err := ParseValue("no.such.key", "x"); err == nil {
		t.Error("ParseValue accepted an unknown key")
	}
	if _, err := ParseValue("history.retention_days", "many"); err == nil {
		t.Error("ParseValue accepted a bad integer")
	}
}

func TestGetValue(t *testing.T) {
	cfg := DefaultConfig()
	if v, ok := GetValue(cfg, "general.log_level"); !ok || v != "info" {
		t.Errorf("GetValue(log_level) = %v, %v", v, ok)
	}
	if _, ok := GetValue(cfg, "bogus"); ok {
		t.Error("GetValue returned ok for unknown key")
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	if len(keys) == 0 {
		t.Fatal("no keys")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
