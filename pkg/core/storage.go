package core

import "context"

// Storage defines the contract for the durable key/value space a matrix lives in.
// Adhering to this interface keeps the core independent of the underlying
// medium (files, SQLite, memory).
type Storage interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Watchable defines an interface for storage that can report changes made
// by other processes.
type Watchable interface {
	// Watch emits an Event for every key that changes until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Persister reads and writes the full note collection of one identity.
//
// Implementations never fail their caller: a read that cannot produce a
// collection reports it as absent, and a write that cannot be stored is
// dropped. The in-memory collection stays authoritative for the session.
type Persister interface {
	// Read returns the stored collection, or false when none is usable.
	Read(ctx context.Context, identity string) ([]Note, bool)

	// Write replaces the stored collection with notes.
	Write(ctx context.Context, identity string, notes []Note)
}
