package observability_test

import (
	"testing"

	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	a, err := automaton.New(2, "ab", automaton.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)
	a.AddFinalStates(1)
	require.NoError(t, a.AddTransition(0, 1, 'a', '.', "A"))
	require.NoError(t, a.AddTransition(1, 1, 'a', 'A', "AA"))

	_, err = a.ReadString("aab")
	require.NoError(t, err)
	m.ObserveVerdict(a.FinalStatus())
	a.Reset()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("0", "1", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("1", "1", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Traps.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resets))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("rejected")))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}
