package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/quickride/ride-api/internal/api/middleware"
	"github.com/quickride/ride-api/internal/core/domain"
)

// ctxPrincipal extracts the principal the auth gate bound to the request.
// A missing binding means the gate did not run on this route; that is a
// wiring bug, surfaced as the same opaque 401 as any other auth failure.
func ctxPrincipal(c echo.Context, slot string) (*domain.Principal, error) {
	p, ok := c.Get(slot).(*domain.Principal)
	if !ok || p == nil {
		return nil, domain.ErrUnauthorized
	}
	return p, nil
}

// ctxToken returns the raw token the request authenticated with.
func ctxToken(c echo.Context) (string, error) {
	token, ok := c.Get(middleware.TokenKey).(string)
	if !ok || token == "" {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}
