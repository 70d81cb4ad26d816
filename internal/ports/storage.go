package ports

import "context"

// KVStore is the persistent key-value store backing user preferences. Keys
// and values are plain strings; an absent key is reported through the boolean
// return of Get rather than an error. Implementations must survive process
// restarts (except the in-memory backend used for ephemeral sessions) and
// must be safe for concurrent use.
//
// Errors signal that the store itself is unavailable or failed; callers in
// the settings layer treat every error as recoverable and fall back to
// defaults.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
