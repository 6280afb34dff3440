package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/klorpe/accountpool/internal/api/metrics"
	"github.com/klorpe/accountpool/internal/api/middleware"
	"github.com/klorpe/accountpool/internal/core/domain"
	"github.com/klorpe/accountpool/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	throttle    ports.LoginThrottle
	lockout     time.Duration
}

func NewAuthHandler(authService ports.AuthService, throttle ports.LoginThrottle, lockout time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, lockout: lockout}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type verifyResponse struct {
	Valid bool         `json:"valid"`
	User  *domain.User `json:"user"`
}

// Login authenticates the admin and returns a bearer token.
//
// The throttle check runs before anything else: a locked-out address is
// rejected without the credentials ever being compared, so lockout responses
// carry no signal about credential validity.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	addr := c.RealIP()

	if h.throttle.Blocked(addr) {
		metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
		minutes := int(h.lockout.Minutes())
		return echo.NewHTTPError(http.StatusTooManyRequests,
			fmt.Sprintf("too many login attempts, try again in %d minutes", minutes))
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return domain.ErrMissingFields
	}
	if req.Username == "" || req.Password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return domain.ErrMissingFields
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.throttle.RecordFailure(addr)
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	h.throttle.Clear(addr)
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Verify checks the bearer token presented in the Authorization header.
//
// @Summary      Verify the current session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Verify(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verifyResponse{Valid: true, User: user})
}
