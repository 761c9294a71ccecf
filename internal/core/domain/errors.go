package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal which factor failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is the single observable outcome for every auth gate
	// rejection: missing, malformed, revoked or expired token, or a token
	// whose principal no longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	ErrEmailTaken        = errors.New("email already registered")
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrTokenRevoked      = errors.New("token revoked")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")

	// ErrStoreUnavailable wraps store timeouts and connectivity failures so
	// handlers can answer 5xx without leaking driver detail.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports every violated input rule, not just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from individual messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}
