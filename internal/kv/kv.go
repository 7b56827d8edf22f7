// Package kv defines the key-value capability the task store persists
// through. Values are opaque strings; backends live under internal/backend.
package kv

import "context"

// Store is a string key-value blob store.
type Store interface {
	// Get returns the value stored under key.
	// ok is false when the key is absent; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
