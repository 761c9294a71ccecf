package ports

import "context"

// TokenBlacklist is the revocation list: a time-bounded denylist of tokens
// invalidated before their natural expiry. Revoking an already-revoked token
// is a no-op, which keeps logout idempotent from the client's perspective.
// Entries drop out after the retention window; IsRevoked never reports true
// for an expired entry.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
