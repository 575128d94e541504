package automaton

import "github.com/aretw0/dpda/pkg/domain"

// EdgeView is a transition with its symbols rendered as text, "." standing
// for epsilon on input, pop and push alike.
type EdgeView struct {
	Source   int    `json:"source"`
	Target   int    `json:"target"`
	Consumed string `json:"consumed"`
	Pop      string `json:"pop"`
	Push     string `json:"push"`
}

// Description is a serializable view of an automaton's topology.
type Description struct {
	States      int        `json:"states"`
	Alphabet    string     `json:"alphabet"`
	FinalStates []int      `json:"final_states"`
	Transitions []EdgeView `json:"transitions"`
}

// Describe returns the topology of a. Run state is not included.
func (a *Automaton) Describe() Description {
	d := Description{
		States:      a.Size(),
		Alphabet:    a.Alphabet(),
		FinalStates: a.FinalStates(),
		Transitions: []EdgeView{},
	}
	for _, tr := range a.Transitions() {
		d.Transitions = append(d.Transitions, NewEdgeView(tr))
	}
	return d
}

// NewEdgeView renders tr.
func NewEdgeView(tr domain.Transition) EdgeView {
	push := tr.Push
	if domain.IsEpsilonPush(push) {
		push = string(domain.Epsilon)
	}
	return EdgeView{
		Source:   tr.Source,
		Target:   tr.Target,
		Consumed: string(tr.Consumed),
		Pop:      string(tr.Pop),
		Push:     push,
	}
}
