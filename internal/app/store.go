package app

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/tasklists/internal/config"
	"github.com/sandeepkv93/tasklists/internal/storage"
)

// OpenStore builds the backend selected by cfg. The returned close function
// is never nil.
func OpenStore(cfg config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), noop, nil
	case config.BackendFile:
		store, err := storage.NewFileStore(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		store, err := storage.OpenSQLite(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: backend %q", config.ErrInvalidConfig, cfg.Backend)
	}
}
