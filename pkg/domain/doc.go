/*
Package domain contains the core data model of the pushdown automaton engine.

It defines the vocabulary shared by the engine, the session layer and the
adapters: symbols and their reserved markers, the transition key used for
determinism checks, run-state snapshots, error kinds and lifecycle hooks.
This package is kept free of I/O and persistence concerns.

# Key Entities

  - Key: the (consumed, pop) pair that identifies a transition's trigger.
  - Transition: a trigger plus its target state and push string.
  - RunState: the run-phase snapshot of an automaton (state, stack, trapped).
  - LifecycleHooks: callbacks fired on transitions, traps and resets.
*/
package domain
