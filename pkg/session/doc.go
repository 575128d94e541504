/*
Package session runs many independent inputs against one automaton.

A Manager holds a built automaton as a read-only template and keeps the run
state of each session in a ports.RunStore. Every operation clones the
template, restores the session's run state into the clone, applies the
operation and saves the result, all under a per-session lock (optionally
backed by a ports.DistributedLocker when several replicas share a store).
*/
package session
