package domain

import (
	"strconv"
	"time"
)

// RunState is the run-phase snapshot of an automaton.
// Topology (alphabet, transitions, final states) is never part of it.
type RunState struct {
	// State is the current state index.
	State int `json:"state"`

	// Stack holds the stack contents from top to bottom.
	Stack string `json:"stack"`

	// Trapped indicates the run entered the sink state.
	Trapped bool `json:"trapped"`

	// Steps counts consumed symbols since the last reset.
	Steps int `json:"steps"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewRunState returns the initial run state: state 0 with only the bottom marker.
func NewRunState() *RunState {
	return &RunState{
		State:     0,
		Stack:     string(BottomMarker),
		UpdatedAt: time.Now(),
	}
}

// Status renders the snapshot the same way an automaton reports its current status.
func (s *RunState) Status() string {
	if s.Trapped {
		return StatusTrapped
	}
	return strconv.Itoa(s.State) + ":" + s.Stack
}
