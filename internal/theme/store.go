package theme

import "context"

// Store is the key-value persistence behind a Preference.
type Store interface {
	// Get reports ok=false when key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
