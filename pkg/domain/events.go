package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventTrap       EventType = "trap"
	EventReset      EventType = "reset"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TransitionEvent describes one applied transition.
type TransitionEvent struct {
	EventBase
	Transition Transition `json:"transition"`
	Epsilon    bool       `json:"epsilon,omitempty"` // fired without consuming input
	Stack      string     `json:"stack"`             // stack after the move, top to bottom
}

// TrapEvent describes entry into the sink state.
type TrapEvent struct {
	EventBase
	State    int    `json:"state"`
	Consumed rune   `json:"consumed"`
	Top      rune   `json:"top"`
	Reason   string `json:"reason,omitempty"`
}

// ResetEvent is emitted when run-phase state returns to its initial values.
type ResetEvent struct {
	EventBase
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the caller's goroutine.
type LifecycleHooks struct {
	OnTransition func(*TransitionEvent)
	OnTrap       func(*TrapEvent)
	OnReset      func(*ResetEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition: chain(h.OnTransition, other.OnTransition),
		OnTrap:       chain(h.OnTrap, other.OnTrap),
		OnReset:      chain(h.OnReset, other.OnReset),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
