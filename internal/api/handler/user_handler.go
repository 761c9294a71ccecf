package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quickride/ride-api/internal/api/metrics"
	"github.com/quickride/ride-api/internal/api/middleware"
	"github.com/quickride/ride-api/internal/core/domain"
	"github.com/quickride/ride-api/internal/core/ports"
)

// UserHandler serves the rider-facing auth surface under /api/users.
type UserHandler struct {
	auth ports.AuthService
}

func NewUserHandler(auth ports.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// Register creates a new rider account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User registration details"
// @Success      201   {object}  userAuthResponse
// @Failure      400   {object}  errorsResponse
// @Failure      409   {object}  messageResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Firstname: req.Fullname.Firstname,
		Lastname:  req.Fullname.Lastname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.KindUser)).Inc()
	return c.JSON(http.StatusCreated, userAuthResponse{Token: token, User: user})
}

// Login authenticates a rider and sets the token cookie.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userAuthResponse
// @Failure      400   {object}  errorsResponse
// @Failure      401   {object}  messageResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.KindUser), "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.KindUser), "success").Inc()
	setTokenCookie(c, token)
	return c.JSON(http.StatusOK, userAuthResponse{Token: token, User: user})
}

// Profile returns the authenticated rider.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  messageResponse
// @Security     BearerAuth
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := ctxPrincipal(c, middleware.UserKey)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout revokes the presented token and clears the cookie.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Security     BearerAuth
// @Router       /users/logout [get]
func (h *UserHandler) Logout(c echo.Context) error {
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

func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenKey,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenKey,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
