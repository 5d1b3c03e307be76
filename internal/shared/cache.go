package shared

import "context"

// CacheInvalidator marks derived read caches stale after a record mutation.
// The dashboard service satisfies this.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
