package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickride/ride-api/internal/api/metrics"
	"github.com/quickride/ride-api/internal/api/middleware"
	"github.com/quickride/ride-api/internal/core/domain"
	"github.com/quickride/ride-api/internal/core/ports"
)

// CaptainHandler serves the driver-facing auth surface under /api/captains.
// The flow mirrors UserHandler; captains additionally register a vehicle.
type CaptainHandler struct {
	auth ports.AuthService
}

func NewCaptainHandler(auth ports.AuthService) *CaptainHandler {
	return &CaptainHandler{auth: auth}
}

// Register creates a new captain account.
//
// @Summary      Register a new captain
// @Tags         captains
// @Accept       json
// @Produce      json
// @Param        body  body      registerCaptainRequest  true  "Captain registration details"
// @Success      201   {object}  captainAuthResponse
// @Failure      400   {object}  errorsResponse
// @Failure      409   {object}  messageResponse
// @Router       /captains/register [post]
func (h *CaptainHandler) Register(c echo.Context) error {
	var req registerCaptainRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, captain, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Firstname: req.Fullname.Firstname,
		Lastname:  req.Fullname.Lastname,
		Email:     req.Email,
		Password:  req.Password,
		Vehicle: &domain.Vehicle{
			Color:    req.Vehicle.Color,
			Plate:    req.Vehicle.Plate,
			Capacity: req.Vehicle.Capacity,
			Type:     domain.VehicleType(req.Vehicle.VehicleType),
		},
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.KindCaptain)).Inc()
	return c.JSON(http.StatusCreated, captainAuthResponse{Token: token, Captain: captain})
}

// Login authenticates a captain and sets the token cookie.
//
// @Summary      Login
// @Tags         captains
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  captainAuthResponse
// @Failure      400   {object}  errorsResponse
// @Failure      401   {object}  messageResponse
// @Router       /captains/login [post]
func (h *CaptainHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, captain, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.KindCaptain), "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.KindCaptain), "success").Inc()
	setTokenCookie(c, token)
	return c.JSON(http.StatusOK, captainAuthResponse{Token: token, Captain: captain})
}

// Profile returns the authenticated captain.
//
// @Summary      Get the authenticated captain's profile
// @Tags         captains
// @Produce      json
// @Success      200  {object}  captainAuthResponse
// @Failure      401  {object}  messageResponse
// @Security     BearerAuth
// @Router       /captains/profile [get]
func (h *CaptainHandler) Profile(c echo.Context) error {
	captain, err := ctxPrincipal(c, middleware.CaptainKey)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Principal{"captain": captain})
}

// Logout revokes the presented token and clears the cookie.
//
// @Summary      Logout
// @Tags         captains
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Security     BearerAuth
// @Router       /captains/logout [get]
func (h *CaptainHandler) Logout(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	metrics.TokensRevokedTotal.Inc()
	clearTokenCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
