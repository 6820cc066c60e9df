// Package localstore implements the durable key/value store backing the
// tourist guide profile: user records, the active session, and favorites.
//
// The store holds string-only values with synchronous reads and writes,
// and exposes two change channels. Writes made by this process publish a changes.TopicStorage
// event carrying the written key; writes made by other processes sharing
// the same store file are surfaced by the Watcher as external events with
// an empty key.
package localstore

import "context"

// Store is the key/value contract consumed by the identity and favorites
// services.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value, and
	// publishes a storage change event on success.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key and publishes a storage change event on
	// success. Removing an absent key is a no-op that still notifies.
	Remove(ctx context.Context, key string) error
}
