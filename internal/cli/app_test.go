package cli_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/dpda/internal/cli"
	"github.com/aretw0/dpda/internal/config"
	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, def string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.dpda")
	require.NoError(t, os.WriteFile(path, []byte(def), 0o644))
	return path
}

func TestApp_Load(t *testing.T) {
	app, err := cli.NewApp(config.Default())
	require.NoError(t, err)

	a, err := app.Load(writeDefinition(t, anbn))
	require.NoError(t, err)
	assert.Equal(t, 4, a.TransitionCount())

	_, err = a.ReadString("ab")
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.Transitions.WithLabelValues("0", "1", "false")))
	assert.Equal(t, 2, testutil.CollectAndCount(app.Metrics.Transitions))

	_, err = app.Load(writeDefinition(t, "2 ab\n0 a $ 0 A$\n0 a $ 1 A$\n-1\n-1\n"))
	assert.ErrorIs(t, err, domain.ErrDeterminismViolation)

	_, err = app.Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestApp_LogsEachTransitionOnce(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	app, err := cli.NewApp(cfg)
	require.NoError(t, err)
	var buf bytes.Buffer
	app.Logger = logging.NewWithWriter(&buf, slog.LevelDebug)

	a, err := app.Load(writeDefinition(t, anbn))
	require.NoError(t, err)
	buf.Reset()

	_, err = a.ReadString("abb")
	require.NoError(t, err)
	require.True(t, a.InTrappedState())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "transition applied"), out)
	assert.Equal(t, 1, strings.Count(out, "automaton trapped"), out)
	assert.Equal(t, 2+1, strings.Count(out, "\n"), "one record per event:\n%s", out)
}

func TestApp_MetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	app, err := cli.NewApp(cfg)
	require.NoError(t, err)
	assert.Nil(t, app.Metrics)

	app.ObserveVerdict(domain.VerdictAccepted)
}

func TestApp_OpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		app, err := cli.NewApp(config.Default())
		require.NoError(t, err)

		store, locker, closeStore, err := app.OpenStore(ctx)
		require.NoError(t, err)
		assert.NotNil(t, store)
		assert.Nil(t, locker)
		assert.NoError(t, closeStore())
	})

	t.Run("File", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store.Driver = config.StoreFile
		cfg.Store.Dir = t.TempDir()
		app, err := cli.NewApp(cfg)
		require.NoError(t, err)

		a, err := app.Load(writeDefinition(t, anbn))
		require.NoError(t, err)
		m, closeStore, err := app.NewManager(ctx, a)
		require.NoError(t, err)
		defer closeStore()

		report, err := m.Start(ctx)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(cfg.Store.Dir, report.SessionID+".json"))
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default()
		cfg.Store.Driver = config.StoreRedis
		cfg.Store.Redis.Addr = mr.Addr()
		app, err := cli.NewApp(cfg)
		require.NoError(t, err)

		a, err := app.Load(writeDefinition(t, anbn))
		require.NoError(t, err)
		m, closeStore, err := app.NewManager(ctx, a)
		require.NoError(t, err)
		defer closeStore()

		report, err := m.Start(ctx)
		require.NoError(t, err)
		assert.True(t, mr.Exists(cfg.Store.Redis.Prefix+report.SessionID))
	})

	t.Run("Redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := config.Default()
		cfg.Store.Driver = config.StoreRedis
		cfg.Store.Redis.Addr = addr
		app, err := cli.NewApp(cfg)
		require.NoError(t, err)

		_, _, _, err = app.OpenStore(ctx)
		assert.Error(t, err)
	})
}
