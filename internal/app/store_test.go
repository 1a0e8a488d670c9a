package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/tasklists/internal/config"
	"github.com/sandeepkv93/tasklists/internal/storage"
)

func TestOpenStoreBackends(t *testing.T) {
	for _, backend := range []string{config.BackendMemory, config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Default()
			cfg.Backend = backend
			cfg.DataPath = filepath.Join(t.TempDir(), "data")

			store, closeStore, err := OpenStore(cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer closeStore()

			if err := store.Set(t.Context(), storage.StateKey, []byte(`{}`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, err := store.Get(t.Context(), storage.StateKey)
			if err != nil || string(got) != `{}` {
				t.Fatalf("get = %q, %v", got, err)
			}
			if backend == config.BackendSQLite {
				if _, err := os.Stat(cfg.SQLitePath()); err != nil {
					t.Fatalf("expected sqlite file: %v", err)
				}
			}
		})
	}
}

func TestOpenStoreRejectsUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "redis"
	if _, _, err := OpenStore(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
