package sessions

import (
	"context"
	"time"
)

// Repository is an expiring key-value store mapping opaque session keys to
// user ids. Expiry is enforced by the store itself; an expired entry is
// indistinguishable from a missing one.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Alive(ctx context.Context) bool
	Close() error
}
