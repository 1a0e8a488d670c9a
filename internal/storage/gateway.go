package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

const gatewayTimeout = 5 * time.Second

// Gateway persists reducer output. It never reports failures to callers;
// they are logged and the in-memory state stays authoritative.
type Gateway struct {
	store  Store
	logger *slog.Logger
}

func NewGateway(store Store, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: store, logger: logger}
}

func (g *Gateway) Store() Store {
	return g.store
}

// Save writes the durable subset of state under StateKey.
func (g *Gateway) Save(state model.State) {
	data, err := EncodeState(state)
	if err != nil {
		g.logger.Warn("encode state failed", "err", err)
		return
	}
	if err := g.SaveRaw(StateKey, data); err != nil {
		g.logger.Warn("save state failed", "key", StateKey, "err", err)
	}
}

// Load returns the raw bytes under StateKey, or false when nothing usable is stored.
func (g *Gateway) Load() ([]byte, bool) {
	return g.get(StateKey)
}

func (g *Gateway) LoadLegacy() ([]byte, bool) {
	return g.get(LegacyKey)
}

func (g *Gateway) SaveRaw(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
	defer cancel()
	return g.store.Set(ctx, key, data)
}

func (g *Gateway) DeleteLegacy() {
	ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
	defer cancel()
	if err := g.store.Delete(ctx, LegacyKey); err != nil {
		g.logger.Warn("delete legacy key failed", "key", LegacyKey, "err", err)
	}
}

func (g *Gateway) get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
	defer cancel()
	data, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.logger.Warn("read failed", "key", key, "err", err)
		}
		return nil, false
	}
	return data, true
}
