package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickride/ride-api/internal/core/domain"
	"github.com/quickride/ride-api/internal/core/ports"
)

// bcryptCost matches the salt factor the platform has always hashed with.
const bcryptCost = 10

// AuthService implements registration, login and logout against one
// credential collection. Hashing and comparison live here, not on the
// record: the domain types stay plain data.
type AuthService struct {
	kind   domain.PrincipalKind
	repo   ports.PrincipalRepository
	tokens *TokenService
	denied ports.TokenBlacklist
}

func NewAuthService(kind domain.PrincipalKind, repo ports.PrincipalRepository, tokens *TokenService, denied ports.TokenBlacklist) *AuthService {
	return &AuthService{kind: kind, repo: repo, tokens: tokens, denied: denied}
}

// Register hashes the secret, persists the principal and issues a token.
// Required-field checks run here as well as at the transport edge so the
// store is never reached with an incomplete record.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Principal, error) {
	var missing []string
	if in.Firstname == "" {
		missing = append(missing, "firstname is required")
	}
	if in.Email == "" {
		missing = append(missing, "email is required")
	}
	if in.Password == "" {
		missing = append(missing, "password is required")
	}
	if s.kind == domain.KindCaptain && in.Vehicle == nil {
		missing = append(missing, "vehicle is required")
	}
	if len(missing) > 0 {
		return "", nil, domain.NewValidationError(missing...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	p := &domain.Principal{
		Kind:         s.kind,
		Fullname:     domain.Fullname{Firstname: in.Firstname, Lastname: in.Lastname},
		Email:        in.Email,
		PasswordHash: string(hash),
		Vehicle:      in.Vehicle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if s.kind == domain.KindCaptain {
		p.Status = domain.StatusInactive
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password produce the same outcome so responses carry no enumeration signal.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	p, err := s.repo.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(p.ID)
	if err != nil {
		return "", nil, err
	}

	p.PasswordHash = ""
	return token, p, nil
}

// Logout places the presented token on the revocation list. Revoking twice
// is a no-op, so repeated logouts with the same token all succeed.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.denied.Revoke(ctx, token)
}
