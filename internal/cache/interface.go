package cache

import (
	"context"
	"time"
)

// Cache is the application-facing caching contract.
type Cache interface {
	// Set stores a value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get loads a value into dest. The bool reports whether the key existed.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes a single key.
	Delete(ctx context.Context, key string) error
	// SetRefreshToken maps a refresh token to its user for ttl.
	SetRefreshToken(ctx context.Context, token string, userID string, ttl time.Duration) error
	// GetRefreshToken resolves a refresh token to the owning user ID.
	GetRefreshToken(ctx context.Context, token string) (string, error)
	// DeleteRefreshToken revokes a refresh token.
	DeleteRefreshToken(ctx context.Context, token string) error
	// DeleteByPrefix removes every key under a prefix, used for stats invalidation.
	DeleteByPrefix(ctx context.Context, prefix string) error
}

var _ Cache = (*Redis)(nil)
