package automaton

import (
	"time"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
)

// ReadCharacter consumes one input symbol.
//
// It fails with ErrInvalidSymbol, leaving the run untouched, when consumed is
// not in the alphabet. Once trapped it does nothing. Otherwise the transition
// keyed (consumed, top of stack) fires, or failing that the one keyed
// (consumed, epsilon); when neither exists the automaton is trapped.
func (a *Automaton) ReadCharacter(consumed rune) error {
	if !a.topo.inAlphabet(consumed) {
		return errors.Wrapf(domain.ErrInvalidSymbol, "%q is not in this machine's alphabet", consumed)
	}
	if a.trapped {
		return nil
	}

	a.settle()
	if a.trapped {
		return nil
	}

	tr, ok := a.match(consumed)
	if !ok {
		a.trap(consumed, "no applicable transition")
		return nil
	}
	a.apply(tr, false)
	a.steps++

	a.settle()
	return nil
}

// ReadString feeds every character of input in order, stopping at the first
// invalid symbol or when the automaton becomes trapped. It returns the number
// of characters consumed.
func (a *Automaton) ReadString(input string) (int, error) {
	n := 0
	for _, r := range input {
		if err := a.ReadCharacter(r); err != nil {
			return n, err
		}
		n++
		if a.trapped {
			break
		}
	}
	return n, nil
}

func (a *Automaton) match(consumed rune) (domain.Transition, bool) {
	table := &a.topo.states[a.state]
	exact := domain.Key{Consumed: consumed, Pop: a.stack.Peek()}
	if _, ok := table.lookup(exact); ok {
		return table.transition(a.state, exact), true
	}
	wildcard := domain.Key{Consumed: consumed, Pop: domain.Epsilon}
	if _, ok := table.lookup(wildcard); ok {
		return table.transition(a.state, wildcard), true
	}
	return domain.Transition{}, false
}

// settle fires epsilon-input transitions until none applies. It is a no-op
// unless WithEpsilonMoves was set.
func (a *Automaton) settle() {
	if a.epsilonLimit == 0 {
		return
	}
	for moves := 0; !a.trapped; moves++ {
		k := domain.Key{Consumed: domain.Epsilon, Pop: a.stack.Peek()}
		table := &a.topo.states[a.state]
		if _, ok := table.lookup(k); !ok {
			return
		}
		if moves == a.epsilonLimit {
			a.trap(domain.Epsilon, "epsilon move limit exceeded")
			return
		}
		a.apply(table.transition(a.state, k), true)
	}
}

// apply performs a matched transition. A concrete pop that disagrees with
// the stack top means the lookup returned a transition that does not apply,
// which is a broken invariant and not a caller error.
func (a *Automaton) apply(tr domain.Transition, epsilon bool) {
	pop := !domain.IsEpsilon(tr.Pop)
	if top := a.stack.Peek(); pop && top != tr.Pop {
		panic(errors.AssertionFailedf(
			"state %d: transition %q pops %q but the stack top is %q", a.state, tr.String(), tr.Pop, top))
	}

	a.state = tr.Target
	a.stack.Replace(pop, tr.Push)

	stack := a.stack.String()
	a.logger.Debug("transition applied",
		"transition", tr.String(),
		"epsilon", epsilon,
		"stack", stack)

	if a.hooks.OnTransition != nil {
		a.hooks.OnTransition(&domain.TransitionEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
			Transition: tr,
			Epsilon:    epsilon,
			Stack:      stack,
		})
	}
}

func (a *Automaton) trap(consumed rune, reason string) {
	a.trapped = true
	top := a.stack.Peek()
	a.logger.Debug("automaton trapped",
		"state", a.state,
		"consumed", string(consumed),
		"top", string(top),
		"reason", reason)

	if a.hooks.OnTrap != nil {
		a.hooks.OnTrap(&domain.TrapEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTrap},
			State:     a.state,
			Consumed:  consumed,
			Top:       top,
			Reason:    reason,
		})
	}
}
