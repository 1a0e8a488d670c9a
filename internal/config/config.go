// Package config resolves runtime settings from defaults, a TOML file and
// TASKLISTS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// FileName is looked up in the working directory when no path is given.
	FileName = "tasklists.toml"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Backend string `toml:"backend"`
	// DataPath is a directory for the file backend and holds tasklists.db for sqlite.
	DataPath string `toml:"data"`
	Log      Log    `toml:"log"`
	// DefaultView overrides the persisted view at startup when set.
	DefaultView string `toml:"default-view"`
	AlertBuffer int    `toml:"alert-buffer"`
	DueAlerts   bool   `toml:"due-alerts"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Backend:  BackendFile,
		DataPath: defaultDataPath(),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		AlertBuffer: 64,
		DueAlerts:   true,
	}
}

// Load applies the TOML file at path (or ./tasklists.toml when path is empty
// and the file exists) and then environment overrides on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = FileName
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v := getEnvString("TASKLISTS_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := getEnvString("TASKLISTS_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := getEnvString("TASKLISTS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getEnvString("TASKLISTS_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := getEnvString("TASKLISTS_DEFAULT_VIEW"); v != "" {
		cfg.DefaultView = v
	}
	if v, ok := getEnvInt("TASKLISTS_ALERT_BUFFER"); ok && v > 0 {
		cfg.AlertBuffer = v
	}
	if v, ok := getEnvBool("TASKLISTS_DUE_ALERTS"); ok {
		cfg.DueAlerts = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: backend %q (want file, sqlite or memory)", ErrInvalidConfig, c.Backend)
	}
	if c.Backend != BackendMemory && strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("%w: data path is required for the %s backend", ErrInvalidConfig, c.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.DefaultView {
	case "", "dashboard", "calendar", "list":
	default:
		return fmt.Errorf("%w: default view %q", ErrInvalidConfig, c.DefaultView)
	}
	if c.AlertBuffer <= 0 {
		return fmt.Errorf("%w: alert buffer must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c Config) SQLitePath() string {
	return filepath.Join(c.DataPath, "tasklists.db")
}

func defaultDataPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "tasklists")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasklists"
	}
	return filepath.Join(home, ".local", "share", "tasklists")
}

func getEnvString(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
