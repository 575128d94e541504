package automaton

import (
	"strconv"
	"time"

	"github.com/aretw0/dpda/pkg/domain"
)

// CurrentStatus returns "trapped" once the automaton is trapped, and
// "<state>:<stack top to bottom>" otherwise.
func (a *Automaton) CurrentStatus() string {
	if a.trapped {
		return domain.StatusTrapped
	}
	return strconv.Itoa(a.state) + ":" + a.stack.String()
}

// Accepted reports whether the input read so far is accepted: the run is not
// trapped and the current state is final. Stack contents play no part.
func (a *Automaton) Accepted() bool {
	return !a.trapped && a.IsFinal(a.state)
}

// FinalStatus returns the verdict for the input read so far. It does not
// end the run.
func (a *Automaton) FinalStatus() domain.Verdict {
	if a.Accepted() {
		return domain.VerdictAccepted
	}
	return domain.VerdictRejected
}

// InTrappedState reports whether the run entered the sink state.
func (a *Automaton) InTrappedState() bool {
	return a.trapped
}

// State returns the current state index.
func (a *Automaton) State() int {
	return a.state
}

// StackContents returns the stack from top to bottom.
func (a *Automaton) StackContents() string {
	return a.stack.String()
}

// Steps returns the number of characters consumed since the last reset.
func (a *Automaton) Steps() int {
	return a.steps
}

// Reset returns the run to state 0 with only the bottom marker on the stack
// and clears the trap. Topology is untouched.
func (a *Automaton) Reset() {
	a.rewind()

	a.logger.Debug("automaton reset")
	if a.hooks.OnReset != nil {
		a.hooks.OnReset(&domain.ResetEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventReset},
		})
	}

	a.settle()
}

// Fresh returns an automaton sharing a's topology at the initial
// configuration, a's own run state untouched. No OnReset hook fires.
func (a *Automaton) Fresh() *Automaton {
	c := a.Clone()
	c.rewind()
	c.settle()
	return c
}

func (a *Automaton) rewind() {
	a.state = 0
	a.stack.Reset()
	a.trapped = false
	a.steps = 0
}
