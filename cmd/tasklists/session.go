package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sandeepkv93/tasklists/internal/app"
	"github.com/sandeepkv93/tasklists/internal/config"
	"github.com/sandeepkv93/tasklists/internal/logging"
	"github.com/sandeepkv93/tasklists/internal/migrate"
	"github.com/sandeepkv93/tasklists/internal/storage"
	"github.com/sandeepkv93/tasklists/internal/update"
	"github.com/spf13/cobra"
)

// session is the wired application for one command invocation.
type session struct {
	cfg       config.Config
	logger    *slog.Logger
	gateway   *storage.Gateway
	container *app.Container
	closers   []func() error
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("data") {
		cfg.DataPath = dataPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openSession loads config, opens the store and hydrates the container
// through the migration engine. Interactive sessions log to a file under
// the data directory.
func openSession(cmd *cobra.Command, interactive bool) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg}

	var logOut io.Writer = cmd.ErrOrStderr()
	if interactive {
		f, err := logging.OpenFile(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, f.Close)
		logOut = f
	}
	s.logger = logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(s.logger)

	store, closeStore, err := app.OpenStore(cfg)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.closers = append(s.closers, closeStore)
	s.gateway = storage.NewGateway(store, s.logger)

	initial := migrate.New(migrate.WithLogger(s.logger)).Load(s.gateway)
	reducer := update.NewReducer(s.gateway, update.WithLogger(s.logger))
	s.container = app.NewContainer(reducer, initial)
	s.logger.Debug("session ready", "backend", cfg.Backend, "data", cfg.DataPath, "lists", len(initial.Lists), "tasks", len(initial.Tasks))
	return s, nil
}

func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// withSession opens a non-interactive session around fn.
func withSession(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args, s)
	}
}
