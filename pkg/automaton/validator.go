package automaton

import (
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
)

// checkDeterminism reports whether k can join the table without two
// transitions ever applying to the same configuration. It never mutates t.
func (t *stateTable) checkDeterminism(k domain.Key) error {
	inputEpsilon := domain.IsEpsilon(k.Consumed)
	popEpsilon := domain.IsEpsilon(k.Pop)

	if inputEpsilon && popEpsilon {
		return errors.Wrap(domain.ErrDeterminismViolation,
			"lambda transition not allowed in deterministic PDA")
	}

	if _, ok := t.byKey[k]; ok {
		return errors.Wrapf(domain.ErrDeterminismViolation,
			"a transition on (%s) already exists", k)
	}

	if inputEpsilon {
		if t.concreteInputsByPop[k.Pop] > 0 {
			return errors.Wrapf(domain.ErrDeterminismViolation,
				"epsilon input would race a transition consuming input with pop %q", k.Pop)
		}
	} else if _, ok := t.byKey[domain.Key{Consumed: domain.Epsilon, Pop: k.Pop}]; ok {
		return errors.Wrapf(domain.ErrDeterminismViolation,
			"an epsilon-input transition with pop %q already exists", k.Pop)
	}

	if popEpsilon {
		if t.concretePopsByInput[k.Consumed] > 0 {
			return errors.Wrapf(domain.ErrDeterminismViolation,
				"epsilon pop would race a transition popping on input %q", k.Consumed)
		}
	} else if _, ok := t.byKey[domain.Key{Consumed: k.Consumed, Pop: domain.Epsilon}]; ok {
		return errors.Wrapf(domain.ErrDeterminismViolation,
			"an epsilon-pop transition on input %q already exists", k.Consumed)
	}

	return nil
}
