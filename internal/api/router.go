package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/klorpe/accountpool/internal/api/handler"
	"github.com/klorpe/accountpool/internal/api/middleware"
	"github.com/klorpe/accountpool/internal/core/domain"
	"github.com/klorpe/accountpool/internal/core/ports"
	"github.com/klorpe/accountpool/internal/core/service"
)

// Deps carries the constructed services the router wires into handlers.
type Deps struct {
	AuthService    ports.AuthService
	AccountService ports.AccountService
	AccountRepo    ports.AccountRepository
	Throttle       *service.LoginThrottle
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("accountpool"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Throttle, deps.Throttle.Window())
	accountHandler := handler.NewAccountHandler(deps.AccountService)
	authMiddleware := middleware.Auth(deps.AuthService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/verify", authHandler.Verify)

	// --- Account routes (bearer token + admin role required) ---
	accounts := e.Group("/api/accounts", authMiddleware, adminOnly)
	accounts.GET("", accountHandler.List)
	accounts.GET("/available", accountHandler.Available)
	accounts.PATCH("/:id/status", accountHandler.UpdateStatus)
	accounts.POST("/import", accountHandler.Import)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.AccountRepo)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
