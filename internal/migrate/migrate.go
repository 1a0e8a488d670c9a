package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/storage"
)

var (
	ErrUnsupportedVersion = errors.New("migrate: unsupported schema version")
	ErrMalformed          = errors.New("migrate: malformed state document")
)

type Engine struct {
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		if newID != nil {
			e.newID = newID
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default(),
		now:    time.Now,
		newID:  model.NewID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load hydrates state from the gateway. It never fails: unreadable data
// is logged and yields an empty state. Legacy data is upgraded, written
// under the current key and the legacy key is removed.
func (e *Engine) Load(gw *storage.Gateway) model.State {
	if raw, ok := gw.Load(); ok {
		state, err := e.Decode(raw)
		if err == nil {
			return state
		}
		e.logger.Warn("stored state unreadable", "key", storage.StateKey, "err", err)
	}

	raw, ok := gw.LoadLegacy()
	if !ok {
		return model.EmptyState()
	}
	state, err := e.DecodeLegacy(raw)
	if err != nil {
		e.logger.Warn("legacy state unreadable", "key", storage.LegacyKey, "err", err)
		return model.EmptyState()
	}
	gw.Save(state)
	gw.DeleteLegacy()
	e.logger.Info("migrated legacy tasks", "tasks", len(state.Tasks), "list", DefaultListName)
	return state
}

// Decode reads an envelope or a bare pre-envelope object and upgrades it
// to the current schema.
func (e *Engine) Decode(raw []byte) (model.State, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.State{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc == nil {
		return model.State{}, ErrMalformed
	}

	versionRaw, enveloped := doc["schemaVersion"]
	if !enveloped {
		return e.upgrade(sniffVersion(doc), raw)
	}
	var version int
	if err := json.Unmarshal(versionRaw, &version); err != nil {
		return model.State{}, fmt.Errorf("%w: schemaVersion: %v", ErrMalformed, err)
	}
	if version < 1 || version > storage.SchemaVersion {
		return model.State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	payload, ok := doc["payload"]
	if !ok {
		return model.State{}, fmt.Errorf("%w: missing payload", ErrMalformed)
	}
	return e.upgrade(version, payload)
}

// DecodeLegacy upgrades a flat task array.
func (e *Engine) DecodeLegacy(raw []byte) (model.State, error) {
	return e.upgrade(1, raw)
}

func (e *Engine) upgrade(from int, data []byte) (model.State, error) {
	var p storage.Payload
	switch from {
	case 1:
		var tasks []model.Task
		if err := json.Unmarshal(data, &tasks); err != nil {
			return model.State{}, fmt.Errorf("%w: legacy tasks: %v", ErrMalformed, err)
		}
		if tasks == nil {
			return model.State{}, fmt.Errorf("%w: legacy tasks: null", ErrMalformed)
		}
		p = upgradeV1toV2(tasks, e.newID(), e.now().UnixMilli())
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return model.State{}, fmt.Errorf("%w: payload: %v", ErrMalformed, err)
		}
	}
	if from < storage.SchemaVersion {
		e.logger.Debug("upgrading state", "from", from, "to", storage.SchemaVersion)
	}
	return upgradeV2toV3(p).State(), nil
}
