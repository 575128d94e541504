/*
Package dpda is a deterministic pushdown automaton engine.

A machine is a fixed number of states numbered from 0, an input alphabet, a
set of accepting states and a table of transitions. Each transition is keyed
by its source state, the input character it consumes and the stack symbol it
pops; either of the two may be the epsilon symbol ".", meaning "consume
nothing" and "pop nothing" respectively. The table is checked for determinism
as it is built, so at most one transition ever applies.

A run starts in state 0 with only the bottom marker "$" on the stack and
reads one character at a time. When no transition applies the run is trapped
and stays rejected until reset. The input read so far is accepted when the
run is not trapped and sits in an accepting state.

# Usage

Machines are usually described in a small line-oriented text format: a
header with the number of states and the alphabet, one transition per line as
"source input pop target push", "-1", then the accepting states ended by
"-1".

	def := `1 ()
	0 ( $ 0 X$
	0 ( X 0 XX
	0 ) X 0 .
	-1
	0 -1
	`
	a, err := dpda.Parse(strings.NewReader(def))
	if err != nil {
		log.Fatal(err)
	}
	a.ReadString("(())")
	fmt.Println(a.CurrentStatus(), a.FinalStatus())

The automaton package builds machines programmatically, the session package
keeps many concurrent runs of one machine in a RunStore, and the adapters
expose sessions over HTTP and MCP.
*/
package dpda
