package metadata

import "context"

// Repository is a small durable key/value store for client session state
// (the stored token, the last logged-in email). Get returns nil for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
