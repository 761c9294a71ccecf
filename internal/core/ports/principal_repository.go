package ports

import (
	"context"

	"github.com/quickride/ride-api/internal/core/domain"
)

// PrincipalRepository is the credential store contract shared by the user and
// captain collections. Lookups report absence as domain.ErrPrincipalNotFound,
// never as a generic error; Create enforces email uniqueness atomically and
// reports races as domain.ErrEmailTaken.
type PrincipalRepository interface {
	// Create persists a principal whose secret is already hashed by the
	// caller and returns the stored record without the hash.
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)

	// FindByEmail looks a principal up by email. The password hash is only
	// included when withPassword is true; default reads exclude it.
	FindByEmail(ctx context.Context, email string, withPassword bool) (*domain.Principal, error)

	// FindByID resolves a principal from a decoded token subject.
	FindByID(ctx context.Context, id string) (*domain.Principal, error)
}
