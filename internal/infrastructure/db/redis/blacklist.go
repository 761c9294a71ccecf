package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickride/ride-api/internal/core/domain"
)

const (
	// blacklistTTL bounds how long a revoked token stays denied. It matches
	// the token's own expiry window, so a revocation record never needs to
	// outlive the credential it blocks.
	blacklistTTL = 24 * time.Hour

	// opTimeout bounds every blacklist round-trip so a slow store surfaces
	// as domain.ErrStoreUnavailable instead of a hung request.
	opTimeout = 5 * time.Second

	keyPrefix = "revoked:"
)

// Blacklist is the Redis-backed revocation list. SETNX with a TTL gives the
// contract for free: duplicate revocations are no-ops and entries drop out of
// the denylist exactly at the retention window.
type Blacklist struct {
	client *redis.Client
}

// NewBlacklist creates a Blacklist wrapping the given Redis client.
func NewBlacklist(client *redis.Client) *Blacklist {
	return &Blacklist{client: client}
}

// Revoke marks the token as invalid for blacklistTTL.
func (b *Blacklist) Revoke(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := b.client.SetNX(ctx, b.key(token), "1", blacklistTTL).Err(); err != nil {
		return storeErr("revoke token", err)
	}
	return nil
}

// IsRevoked reports whether the token is on the denylist.
func (b *Blacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := b.client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, storeErr("check revoked token", err)
	}
	return n > 0, nil
}

func (b *Blacklist) key(token string) string {
	return keyPrefix + token
}

// storeErr collapses timeouts and connectivity failures into the domain's
// store-unavailable sentinel while keeping the driver error in the chain.
func storeErr(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
