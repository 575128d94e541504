package automaton

import (
	"log/slog"
	"slices"

	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
)

// Topology is the build-phase part of an automaton: its size, alphabet,
// transition tables and final states. Once built it may be shared read-only
// between automata created with Clone.
type Topology struct {
	size     int
	alphabet []rune
	symbols  map[rune]struct{}
	states   []stateTable // indexed by source state
	finals   map[int]struct{}
}

func (t *Topology) inAlphabet(r rune) bool {
	_, ok := t.symbols[r]
	return ok
}

func (t *Topology) validState(s int) bool {
	return s >= 0 && s < t.size
}

// Automaton is a deterministic pushdown automaton together with its run state.
type Automaton struct {
	topo *Topology

	state   int
	stack   *Stack
	trapped bool
	steps   int

	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	epsilonLimit int
}

// Option configures an Automaton.
type Option func(*Automaton)

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Automaton) {
		a.hooks = hooks
	}
}

// WithEpsilonMoves lets epsilon-input transitions fire without consuming a
// character. The automaton settles before and after every read and after a
// reset, taking at most limit consecutive epsilon moves; a run that would
// take more is trapped. A limit of zero (the default) leaves epsilon-input
// transitions stored but inert.
func WithEpsilonMoves(limit int) Option {
	return func(a *Automaton) {
		if limit > 0 {
			a.epsilonLimit = limit
		}
	}
}

// New creates an automaton with size states (numbered from 0) over the given
// alphabet. Duplicate alphabet characters are dropped. The epsilon marker is
// reserved and cannot be part of the alphabet.
func New(size int, alphabet string, opts ...Option) (*Automaton, error) {
	if size <= 0 {
		return nil, errors.Wrapf(domain.ErrInvalidState, "number of states must be positive, got %d", size)
	}

	topo := &Topology{
		size:    size,
		symbols: make(map[rune]struct{}),
		states:  make([]stateTable, size),
		finals:  make(map[int]struct{}),
	}
	for _, r := range alphabet {
		if domain.IsEpsilon(r) {
			return nil, errors.Wrapf(domain.ErrInvalidSymbol, "%q is reserved for epsilon", r)
		}
		if _, dup := topo.symbols[r]; dup {
			continue
		}
		topo.symbols[r] = struct{}{}
		topo.alphabet = append(topo.alphabet, r)
	}
	for i := range topo.states {
		topo.states[i] = newStateTable()
	}

	a := &Automaton{
		topo:   topo,
		stack:  NewStack(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// AddFinalStates marks states as accepting. Values outside [0, N) and
// duplicates are ignored.
func (a *Automaton) AddFinalStates(states ...int) {
	for _, s := range states {
		if !a.topo.validState(s) {
			continue
		}
		a.topo.finals[s] = struct{}{}
	}
}

// AddTransition adds the transition source --consumed, pop / push--> target.
// The epsilon marker may stand for consumed, pop or push, but not for both
// consumed and pop. The transition is rejected with ErrDeterminismViolation
// if it could apply to a configuration already covered by another
// transition leaving source. On error nothing is stored.
func (a *Automaton) AddTransition(source, target int, consumed, pop rune, push string) error {
	if domain.IsEpsilon(consumed) && domain.IsEpsilon(pop) {
		return errors.Wrap(domain.ErrDeterminismViolation,
			"lambda transition not allowed in deterministic PDA")
	}
	if !a.topo.validState(source) {
		return errors.Wrapf(domain.ErrInvalidState, "source state %d out of range [0, %d)", source, a.topo.size)
	}
	if !a.topo.validState(target) {
		return errors.Wrapf(domain.ErrInvalidState, "target state %d out of range [0, %d)", target, a.topo.size)
	}
	if !domain.IsEpsilon(consumed) && !a.topo.inAlphabet(consumed) {
		return errors.Wrapf(domain.ErrInvalidSymbol, "input %q is not in this machine's alphabet", consumed)
	}

	tr := domain.Transition{Source: source, Target: target, Consumed: consumed, Pop: pop, Push: push}
	table := &a.topo.states[source]
	if err := table.checkDeterminism(tr.Key()); err != nil {
		a.logger.Warn("transition rejected", "transition", tr.String(), "err", err)
		return err
	}

	table.insert(tr)
	a.logger.Debug("transition added", "transition", tr.String())
	return nil
}

// Clone returns an automaton sharing this automaton's topology with an
// independent copy of its run state, logger, hooks and options. Transitions
// or final states added to either automaton are visible to both.
func (a *Automaton) Clone() *Automaton {
	c := *a
	c.stack = a.stack.Clone()
	return &c
}

// Snapshot captures the run state.
func (a *Automaton) Snapshot() *domain.RunState {
	return &domain.RunState{
		State:   a.state,
		Stack:   a.stack.String(),
		Trapped: a.trapped,
		Steps:   a.steps,
	}
}

// Restore replaces the run state with a snapshot taken from an automaton of
// the same topology.
func (a *Automaton) Restore(s *domain.RunState) error {
	if s == nil {
		return errors.New("cannot restore nil run state")
	}
	if !a.topo.validState(s.State) {
		return errors.Wrapf(domain.ErrInvalidState, "snapshot state %d out of range [0, %d)", s.State, a.topo.size)
	}
	a.state = s.State
	a.stack = stackFromString(s.Stack)
	a.trapped = s.Trapped
	a.steps = s.Steps
	return nil
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return a.topo.size
}

// Alphabet returns the deduplicated alphabet in first-seen order.
func (a *Automaton) Alphabet() string {
	return string(a.topo.alphabet)
}

// InAlphabet reports whether r can be read.
func (a *Automaton) InAlphabet(r rune) bool {
	return a.topo.inAlphabet(r)
}

// FinalStates returns the accepting states in ascending order.
func (a *Automaton) FinalStates() []int {
	out := make([]int, 0, len(a.topo.finals))
	for s := range a.topo.finals {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// IsFinal reports whether s is an accepting state.
func (a *Automaton) IsFinal(s int) bool {
	_, ok := a.topo.finals[s]
	return ok
}

// Groups returns the transitions leaving source grouped by target state.
func (a *Automaton) Groups(source int) ([]Group, error) {
	if !a.topo.validState(source) {
		return nil, errors.Wrapf(domain.ErrInvalidState, "source state %d out of range [0, %d)", source, a.topo.size)
	}
	return a.topo.states[source].view(source), nil
}

// Transitions returns every transition ordered by source state, then by
// group, then by insertion. The result is a copy.
func (a *Automaton) Transitions() []domain.Transition {
	var out []domain.Transition
	for source := range a.topo.states {
		for _, g := range a.topo.states[source].view(source) {
			out = append(out, g.Transitions...)
		}
	}
	return out
}

// TransitionCount returns the number of stored transitions.
func (a *Automaton) TransitionCount() int {
	n := 0
	for i := range a.topo.states {
		n += a.topo.states[i].size()
	}
	return n
}
