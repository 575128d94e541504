package observability

import (
	"strconv"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for automaton runs.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Traps       *prometheus.CounterVec
	Resets      prometheus.Counter
	Verdicts    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dpda_transitions_total",
				Help: "Total number of applied transitions",
			},
			[]string{"source", "target", "epsilon"},
		),
		Traps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dpda_traps_total",
				Help: "Total number of runs that entered the trap state",
			},
			[]string{"state"},
		),
		Resets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dpda_resets_total",
				Help: "Total number of run resets",
			},
		),
		Verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dpda_verdicts_total",
				Help: "Total number of reported verdicts",
			},
			[]string{"verdict"},
		),
	}

	for _, c := range []prometheus.Collector{m.Transitions, m.Traps, m.Resets, m.Verdicts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(
				strconv.Itoa(e.Transition.Source),
				strconv.Itoa(e.Transition.Target),
				strconv.FormatBool(e.Epsilon),
			).Inc()
		},
		OnTrap: func(e *domain.TrapEvent) {
			m.Traps.WithLabelValues(strconv.Itoa(e.State)).Inc()
		},
		OnReset: func(*domain.ResetEvent) {
			m.Resets.Inc()
		},
	}
}

// ObserveVerdict counts a verdict handed to a caller.
func (m *Metrics) ObserveVerdict(v domain.Verdict) {
	label := "rejected"
	if v == domain.VerdictAccepted {
		label = "accepted"
	}
	m.Verdicts.WithLabelValues(label).Inc()
}
