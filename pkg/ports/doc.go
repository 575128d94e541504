/*
Package ports defines the driven ports (interfaces) of the session layer.

These interfaces decouple session handling from external implementations,
allowing run states to live in memory or in a shared backend such as Redis.

# Key Interfaces

  - RunStore: persists and loads the run state of a session.
  - DistributedLocker: provides distributed locking for concurrent session access.
*/
package ports
