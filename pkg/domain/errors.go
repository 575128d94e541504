package domain

import "github.com/cockroachdb/errors"

// ErrInvalidState is returned when a state index falls outside [0, N).
var ErrInvalidState = errors.New("invalid state")

// ErrInvalidSymbol is returned when a character is not part of the alphabet.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrDeterminismViolation is returned when a transition would make the automaton nondeterministic.
var ErrDeterminismViolation = errors.New("determinism violation")

// ErrInvalidDefinition is returned when a textual machine description cannot be parsed.
var ErrInvalidDefinition = errors.New("invalid definition")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidSessionID is returned when a store cannot represent a session ID.
var ErrInvalidSessionID = errors.New("invalid session id")
