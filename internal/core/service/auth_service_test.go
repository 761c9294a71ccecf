package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickride/ride-api/internal/core/domain"
	"github.com/quickride/ride-api/internal/core/ports"
)

type stubRepo struct {
	byEmail map[string]*domain.Principal
	nextID  int
}

func newStubRepo() *stubRepo {
	return &stubRepo{byEmail: make(map[string]*domain.Principal)}
}

func clonePrincipal(p *domain.Principal) *domain.Principal {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Vehicle != nil {
		v := *p.Vehicle
		clone.Vehicle = &v
	}
	return &clone
}

func (r *stubRepo) Create(_ context.Context, p *domain.Principal) (*domain.Principal, error) {
	if _, exists := r.byEmail[p.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	stored := clonePrincipal(p)
	stored.ID = fmt.Sprintf("id-%d", r.nextID)
	r.byEmail[stored.Email] = stored

	created := clonePrincipal(stored)
	created.PasswordHash = ""
	return created, nil
}

func (r *stubRepo) FindByEmail(_ context.Context, email string, withPassword bool) (*domain.Principal, error) {
	p, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrPrincipalNotFound
	}
	found := clonePrincipal(p)
	if !withPassword {
		found.PasswordHash = ""
	}
	return found, nil
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*domain.Principal, error) {
	for _, p := range r.byEmail {
		if p.ID == id {
			found := clonePrincipal(p)
			found.PasswordHash = ""
			return found, nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

type stubBlacklist struct {
	revoked map[string]bool
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{revoked: make(map[string]bool)}
}

func (b *stubBlacklist) Revoke(_ context.Context, token string) error {
	b.revoked[token] = true
	return nil
}

func (b *stubBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	return b.revoked[token], nil
}

func newTestService(kind domain.PrincipalKind) (*AuthService, *stubRepo, *stubBlacklist, *TokenService) {
	repo := newStubRepo()
	denied := newStubBlacklist()
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(kind, repo, tokens, denied), repo, denied, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _, tokens := newTestService(domain.KindUser)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Firstname: "Ann",
		Email:     "a@b.com",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.Email != "a@b.com" {
		t.Fatalf("unexpected principal: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned principal must not carry the secret")
	}

	stored := repo.byEmail["a@b.com"]
	if stored.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	id, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if id != user.ID {
		t.Fatalf("token bound to %q, want %q", id, user.ID)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestService(domain.KindUser)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// All violations must be reported, not just the first.
	if len(ve.Messages) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(ve.Messages), ve.Messages)
	}
}

func TestAuthService_Register_CaptainRequiresVehicle(t *testing.T) {
	svc, _, _, _ := newTestService(domain.KindCaptain)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Firstname: "Max",
		Email:     "max@b.com",
		Password:  "secret1",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_Register_CaptainDefaults(t *testing.T) {
	svc, _, _, _ := newTestService(domain.KindCaptain)

	_, captain, err := svc.Register(context.Background(), ports.RegisterInput{
		Firstname: "Max",
		Email:     "max@b.com",
		Password:  "secret1",
		Vehicle:   &domain.Vehicle{Color: "red", Plate: "ABC-123", Capacity: 4, Type: domain.VehicleCar},
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if captain.Status != domain.StatusInactive {
		t.Fatalf("expected new captain to be inactive, got %q", captain.Status)
	}
	if captain.Vehicle == nil || captain.Vehicle.Plate != "ABC-123" {
		t.Fatalf("vehicle not persisted: %+v", captain.Vehicle)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService(domain.KindUser)

	in := ports.RegisterInput{Firstname: "Ann", Email: "a@b.com", Password: "secret1"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _, tokens := newTestService(domain.KindUser)

	_, registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Firstname: "Ann", Email: "a@b.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected principal: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("login response must not carry the secret")
	}
	if id, err := tokens.Verify(token); err != nil || id != user.ID {
		t.Fatalf("token invalid: id=%q err=%v", id, err)
	}
}

func TestAuthService_Login_NoEnumeration(t *testing.T) {
	svc, _, _, _ := newTestService(domain.KindUser)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Firstname: "Ann", Email: "a@b.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, wrongPass := svc.Login(context.Background(), "a@b.com", "wrong")
	_, _, unknown := svc.Login(context.Background(), "ghost@b.com", "secret1")
	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("outcomes differ: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, _, denied, _ := newTestService(domain.KindUser)

	token, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Firstname: "Ann", Email: "a@b.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if revoked, _ := denied.IsRevoked(context.Background(), token); !revoked {
		t.Fatalf("token not on the revocation list after logout")
	}
	// Second logout with the same token is a no-op.
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("repeated logout failed: %v", err)
	}
}
