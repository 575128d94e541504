/*
Package observability turns automaton lifecycle hooks into telemetry.

Metrics registers Prometheus counters and exposes them as a
domain.LifecycleHooks value, ready to be merged with other hooks through
LifecycleHooks.Merge and passed to automaton.WithLifecycleHooks.
*/
package observability
