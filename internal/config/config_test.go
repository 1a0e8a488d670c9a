package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	cfg := Default()
	if cfg.Backend != BackendFile || cfg.DataPath != filepath.Join("/tmp/xdg", "tasklists") {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.AlertBuffer != 64 || !cfg.DueAlerts {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TASKLISTS_BACKEND", "sqlite")
	t.Setenv("TASKLISTS_DATA", "state/dir")
	t.Setenv("TASKLISTS_LOG_LEVEL", "debug")
	t.Setenv("TASKLISTS_LOG_FORMAT", "json")
	t.Setenv("TASKLISTS_DEFAULT_VIEW", "calendar")
	t.Setenv("TASKLISTS_ALERT_BUFFER", "128")
	t.Setenv("TASKLISTS_DUE_ALERTS", "off")

	cfg := FromEnv(Default())
	if cfg.Backend != BackendSQLite || cfg.DataPath != "state/dir" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.DefaultView != "calendar" || cfg.AlertBuffer != 128 || cfg.DueAlerts {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.SQLitePath() != filepath.Join("state/dir", "tasklists.db") {
		t.Fatalf("sqlite path = %q", cfg.SQLitePath())
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TASKLISTS_ALERT_BUFFER", "lots")
	t.Setenv("TASKLISTS_DUE_ALERTS", "maybe")
	cfg := FromEnv(Default())
	if cfg.AlertBuffer != 64 || !cfg.DueAlerts {
		t.Fatalf("garbage env applied: %+v", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	body := "backend = \"memory\"\ndefault-view = \"list\"\n\n[log]\nlevel = \"warn\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKLISTS_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendMemory || cfg.DefaultView != "list" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Log.Level != "error" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(""); err != nil {
		t.Fatalf("implicit missing file should be ignored: %v", err)
	}
	if _, err := Load("nope.toml"); err == nil {
		t.Fatal("expected error for explicit missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Backend = "redis" },
		func(c *Config) { c.DataPath = "" },
		func(c *Config) { c.Log.Level = "loud" },
		func(c *Config) { c.Log.Format = "xml" },
		func(c *Config) { c.DefaultView = "kanban" },
		func(c *Config) { c.AlertBuffer = 0 },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: err = %v", i, err)
		}
	}
}
