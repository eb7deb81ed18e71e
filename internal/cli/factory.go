package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/countdown"
	"github.com/aretw0/countdown/internal/adapters/file"
	"github.com/aretw0/countdown/internal/config"
	"github.com/aretw0/countdown/pkg/adapters/memory"
	"github.com/aretw0/countdown/pkg/adapters/process"
	"github.com/aretw0/countdown/pkg/adapters/redis"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/persistence/middleware"
	"github.com/aretw0/countdown/pkg/ports"
)

// Options are the flags shared by every command.
type Options struct {
	ConfigPath string
	Debug      bool
	Plain      bool
}

// environment is everything a command needs, built from Options.
type environment struct {
	cfg    config.Config
	logger *slog.Logger
	store  ports.DateStore
	close  func() error
}

func setup(opts Options) (*environment, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger, err := createLogger(cfg.Log.Level, opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	store, closer, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "backend", cfg.Store.Backend)
	store = middleware.Chain(store, middleware.NewLoggingMiddleware(logger.With("component", "store")))
	return &environment{cfg: cfg, logger: logger, store: store, close: closer}, nil
}

// openStore builds the configured DateStore. The returned closer releases
// backend connections.
func openStore(cfg config.StoreConfig) (ports.DateStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendFile:
		return file.New(cfg.Path), noop, nil
	case config.BackendRedis:
		ttl, err := cfg.Redis.TTLDuration()
		if err != nil {
			return nil, nil, err
		}
		opts := []redis.Option{redis.WithTTL(ttl)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

// newWidget wires config, logging and hooks into a Widget.
func (env *environment) newWidget(presenter ports.Presenter, debug bool, hooks ...domain.LifecycleHooks) (*countdown.Widget, *process.Runner, error) {
	loc, err := env.cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	opts := []countdown.Option{
		countdown.WithLogger(env.logger),
		countdown.WithLocation(loc),
	}
	if debug {
		opts = append(opts, countdown.WithLifecycleHooks(createDebugHooks(env.logger)))
	}

	var runner *process.Runner
	if len(env.cfg.Notify) > 0 {
		cmds := make([]process.Command, 0, len(env.cfg.Notify))
		for _, n := range env.cfg.Notify {
			cmds = append(cmds, process.Command{Name: n.Name, Command: n.Command, Args: n.Args, Env: n.Env})
		}
		runner = process.NewRunner(process.WithCommands(cmds...), process.WithLogger(env.logger))
		opts = append(opts, countdown.WithLifecycleHooks(runner.Hooks()))
	}

	for _, h := range hooks {
		opts = append(opts, countdown.WithLifecycleHooks(h))
	}

	return countdown.New(env.store, presenter, opts...), runner, nil
}
