/*
Package automaton implements a deterministic pushdown automaton (DPDA).

An Automaton is built in two phases. During the build phase final states and
transitions are added; every transition is checked against the transitions
already leaving its source state and rejected if both could ever apply to the
same (state, input, stack top) configuration. During the run phase input
symbols are fed one at a time with ReadCharacter. When no transition applies
the automaton enters a trap (sink) state that only Reset clears.

# Usage

	a, err := automaton.New(1, "()")
	if err != nil {
		log.Fatal(err)
	}
	a.AddFinalStates(0)
	_ = a.AddTransition(0, 0, '(', '$', "X$")
	_ = a.AddTransition(0, 0, '(', 'X', "XX")
	_ = a.AddTransition(0, 0, ')', 'X', ".")

	for _, r := range "(())" {
		if err := a.ReadCharacter(r); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println(a.CurrentStatus()) // 0:$
	fmt.Println(a.FinalStatus())   // String accepted.

# Concurrency

An Automaton is not safe for concurrent use. The topology (alphabet,
transitions, final states) can be shared read-only once built: Clone returns
an automaton with the same topology and an independent copy of the run state.
*/
package automaton
