// Package denylist remembers revoked session tokens until they would have
// expired anyway.
package denylist

import (
	"context"
	"time"
)

type Denylist interface {
	// Revoke marks jti as revoked until expiresAt. Revoking an already
	// expired token is a no-op.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Stop() // Stop cleanup goroutines and release resources
}
