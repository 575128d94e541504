package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dpda/internal/config"
	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/adapters/file"
	"github.com/aretw0/dpda/pkg/adapters/memory"
	"github.com/aretw0/dpda/pkg/adapters/redis"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/aretw0/dpda/pkg/observability"
	"github.com/aretw0/dpda/pkg/ports"
	"github.com/aretw0/dpda/pkg/session"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// App holds what every command shares: configuration, logger and metrics.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Metrics  *observability.Metrics
}

// NewApp builds the shared dependencies from cfg.
func NewApp(cfg config.Config) (*App, error) {
	app := &App{
		Config:   cfg,
		Logger:   logging.New(logging.ParseLevel(cfg.LogLevel)),
		Registry: prometheus.NewRegistry(),
	}
	if cfg.Metrics.Enabled {
		m, err := observability.NewMetrics(app.Registry)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register metrics")
		}
		app.Metrics = m
	}
	return app, nil
}

// Hooks returns the metrics hooks, or none when metrics are disabled.
// Transitions and traps are already logged by the automaton itself.
func (app *App) Hooks() domain.LifecycleHooks {
	if app.Metrics == nil {
		return domain.LifecycleHooks{}
	}
	return app.Metrics.Hooks()
}

// AutomatonOptions are the options every automaton built by the app gets.
func (app *App) AutomatonOptions() []automaton.Option {
	opts := []automaton.Option{
		automaton.WithLogger(app.Logger),
		automaton.WithLifecycleHooks(app.Hooks()),
	}
	if app.Config.EpsilonLimit > 0 {
		opts = append(opts, automaton.WithEpsilonMoves(app.Config.EpsilonLimit))
	}
	return opts
}

// Load reads a definition file strictly, "-" meaning stdin.
func (app *App) Load(path string) (*automaton.Automaton, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open definition %s", path)
		}
		defer f.Close()
		r = f
	}

	a, err := Build(r, io.Discard,
		WithStrict(true),
		WithConsoleLogger(app.Logger),
		WithAutomatonOptions(app.AutomatonOptions()...))
	if err != nil {
		return nil, errors.Wrapf(err, "definition %s", path)
	}
	return a, nil
}

// ObserveVerdict records v when metrics are enabled.
func (app *App) ObserveVerdict(v domain.Verdict) {
	if app.Metrics != nil {
		app.Metrics.ObserveVerdict(v)
	}
}

// OpenStore connects the configured RunStore. The locker is nil unless the
// driver is redis. closeFn releases the connection.
func (app *App) OpenStore(ctx context.Context) (store ports.RunStore, locker ports.DistributedLocker, closeFn func() error, err error) {
	switch app.Config.Store.Driver {
	case config.StoreRedis:
		rc := app.Config.Store.Redis
		rs := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithPrefix(rc.Prefix),
			redis.WithTTL(app.Config.Store.TTL))
		if err := rs.Client().Ping(ctx).Err(); err != nil {
			_ = rs.Close()
			return nil, nil, nil, errors.Wrapf(err, "failed to reach redis at %s", rc.Addr)
		}
		app.Logger.Info("using redis store", "addr", rc.Addr, "prefix", rs.Prefix())
		return rs, redis.NewLocker(rs.Client(), rs.Prefix()), rs.Close, nil
	case config.StoreFile:
		app.Logger.Info("using file store", "dir", app.Config.Store.Dir)
		return file.New(app.Config.Store.Dir), nil, func() error { return nil }, nil
	default:
		return memory.NewStore(), nil, func() error { return nil }, nil
	}
}

// NewManager wires a session manager for template on the configured store.
func (app *App) NewManager(ctx context.Context, template *automaton.Automaton) (*session.Manager, func() error, error) {
	store, locker, closeStore, err := app.OpenStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	opts := []session.Option{
		session.WithLogger(app.Logger),
		session.WithLockTTL(app.Config.Store.LockTTL),
	}
	if locker != nil {
		opts = append(opts, session.WithLocker(locker))
	}
	return session.NewManager(template, store, opts...), closeStore, nil
}
