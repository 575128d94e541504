package domain

import "fmt"

// Key identifies what triggers a transition: the consumed input symbol and the
// popped stack symbol. Two transitions from the same state conflict iff their
// keys are equal; target and push string play no part.
type Key struct {
	Consumed rune `json:"consumed"`
	Pop      rune `json:"pop"`
}

// String renders the key as "consumed,pop".
func (k Key) String() string {
	return fmt.Sprintf("%c,%c", k.Consumed, k.Pop)
}

// Transition is one edge of the automaton.
type Transition struct {
	Source   int    `json:"source"`
	Target   int    `json:"target"`
	Consumed rune   `json:"consumed"`
	Pop      rune   `json:"pop"`
	Push     string `json:"push"`
}

// Key returns the trigger of the transition.
func (t Transition) Key() Key {
	return Key{Consumed: t.Consumed, Pop: t.Pop}
}

// String renders the transition in the same field order the text front-end
// reads it: "source consumed pop target push".
func (t Transition) String() string {
	push := t.Push
	if IsEpsilonPush(push) {
		push = string(Epsilon)
	}
	return fmt.Sprintf("%d %c %c %d %s", t.Source, t.Consumed, t.Pop, t.Target, push)
}
