package ports

import (
	"context"

	"github.com/quickride/ride-api/internal/core/domain"
)

// RegisterInput carries the validated fields for a new principal. Vehicle is
// nil for users and required for captains.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
	Vehicle   *domain.Vehicle
}

// AuthService orchestrates registration, login and logout for one principal
// kind. Two instances exist at runtime, one per credential collection.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.Principal, error)
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
	Logout(ctx context.Context, token string) error
}

// TokenVerifier is the stateless half of the token service, consumed by the
// auth gate. Verification touches no store.
type TokenVerifier interface {
	Verify(token string) (principalID string, err error)
}
