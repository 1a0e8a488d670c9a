package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklists/internal/app"
	"github.com/sandeepkv93/tasklists/internal/config"
	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/scheduler"
	"github.com/sandeepkv93/tasklists/internal/update"
)

// Run blocks until the user quits or ctx is cancelled. When due alerts are
// enabled the scheduler is re-armed after every dispatch.
func Run(ctx context.Context, c *app.Container, cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if v := model.View(cfg.DefaultView); v.IsValid() && c.State().ActiveView != v {
		c.Dispatch(update.SetViewMsg{View: v})
	}

	opts := []Option{WithLogger(logger)}
	if cfg.DueAlerts {
		engine := scheduler.NewEngine(cfg.AlertBuffer)
		engine.Start()
		defer engine.Stop()

		unsubscribe := WatchDue(c, engine, time.Now, logger)
		defer unsubscribe()
		opts = append(opts, WithAlerts(engine.C()))
	}

	program := tea.NewProgram(NewModel(c, opts...), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// WatchDue loads the current due dates into engine and reloads them whenever
// the container state changes. The returned function stops watching.
func WatchDue(c *app.Container, engine *scheduler.Engine, now func() time.Time, logger *slog.Logger) func() {
	if logger == nil {
		logger = slog.Default()
	}
	reset := func(s model.State) {
		if err := engine.Reset(scheduler.EventsFromState(s, now())); err != nil {
			logger.Warn("reset due alerts failed", "err", err)
		}
	}
	reset(c.State())
	return c.Subscribe(reset)
}
