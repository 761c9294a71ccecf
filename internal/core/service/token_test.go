package service

import (
	"errors"
	"testing"
	"time"

	"github.com/quickride/ride-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("64a1f0c2e4b0a1b2c3d4e5f6")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if id != "64a1f0c2e4b0a1b2c3d4e5f6" {
		t.Fatalf("expected original id, got %q", id)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("64a1f0c2e4b0a1b2c3d4e5f6")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one character anywhere in the token; verification must fail.
	for _, i := range []int{0, len(token) / 2, len(token) - 1} {
		mutated := []byte(token)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		if _, err := svc.Verify(string(mutated)); err == nil {
			t.Fatalf("expected error for mutated token at index %d", i)
		}
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("id")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)
	// Negative TTL falls back to the 24h default, so build an expired one
	// with a short-lived service instead.
	short := &TokenService{secret: []byte("secret"), ttl: -time.Minute}

	token, err := short.Issue("id")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}
