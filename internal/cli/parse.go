package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
)

// Sentinel ends the transition and final-state sections of a definition.
const Sentinel = "-1"

// ParseHeader reads "<states> <alphabet>". Tokens after the second are ignored.
func ParseHeader(line string) (size int, alphabet string, err error) {
	fields := strings.Fields(line)
	if len(fields) <= 1 {
		return 0, "", errors.Wrap(domain.ErrInvalidDefinition, "please enter two inputs")
	}

	size, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", errors.Wrap(domain.ErrInvalidDefinition, "please enter an integer for the number of states")
	}
	if size <= 0 {
		return 0, "", errors.Wrap(domain.ErrInvalidDefinition, "number of states must be positive")
	}
	return size, fields[1], nil
}

// IsSentinel reports whether a line holds nothing but the sentinel.
func IsSentinel(line string) bool {
	fields := strings.Fields(line)
	return len(fields) == 1 && fields[0] == Sentinel
}

// ParseTransition reads "<source> <input> <pop> <target> <push>", where input
// and pop are single characters and "." stands for epsilon.
func ParseTransition(line string) (domain.Transition, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return domain.Transition{}, errors.Wrap(domain.ErrInvalidDefinition, "invalid number of arguments given")
	}

	source, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Transition{}, errors.Wrap(domain.ErrInvalidDefinition, "please enter an integer for the states")
	}
	consumed, err := singleRune(fields[1], "input symbol")
	if err != nil {
		return domain.Transition{}, err
	}
	pop, err := singleRune(fields[2], "pop symbol")
	if err != nil {
		return domain.Transition{}, err
	}
	target, err := strconv.Atoi(fields[3])
	if err != nil {
		return domain.Transition{}, errors.Wrap(domain.ErrInvalidDefinition, "please enter an integer for the states")
	}

	return domain.Transition{
		Source:   source,
		Target:   target,
		Consumed: consumed,
		Pop:      pop,
		Push:     fields[4],
	}, nil
}

func singleRune(field, what string) (rune, error) {
	if utf8.RuneCountInString(field) != 1 {
		return 0, errors.Wrapf(domain.ErrInvalidDefinition, "invalid length for %s argument", what)
	}
	r, _ := utf8.DecodeRuneInString(field)
	return r, nil
}

// ParseFinalStates collects the integers of one line up to the sentinel.
// Tokens that are not integers are skipped. done reports whether the
// sentinel was seen.
func ParseFinalStates(line string) (values []int, done bool) {
	for _, tok := range strings.Fields(line) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if n == -1 {
			return values, true
		}
		values = append(values, n)
	}
	return values, false
}
