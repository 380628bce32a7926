// Package session tracks open channels by session identifier.
//
// The Registry exclusively owns each Session record (identifier, creation
// time, bounded message history, delivery handle). The connection manager
// holds only a transient reference while a channel is open and interacts with
// sessions through Registry operations, never through shared mutable state.
//
// Re-registering an identifier is a reconnect: the stale handle is closed and
// replaced, preserving the invariant that at most one live channel exists per
// session identifier.
package session
