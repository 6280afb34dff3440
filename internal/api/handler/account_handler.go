package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/klorpe/accountpool/internal/api/metrics"
	"github.com/klorpe/accountpool/internal/core/domain"
	"github.com/klorpe/accountpool/internal/core/ports"
)

// AccountHandler handles HTTP requests for credential pool operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List returns every record in the pool.
//
// @Summary      List all accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Available returns the first record still marked available.
//
// @Summary      Get the first available account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /api/accounts/available [get]
func (h *AccountHandler) Available(c echo.Context) error {
	account, err := h.service.FirstAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateStatus flips one record between available and used.
//
// @Summary      Update an account's status
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Account id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/accounts/{id}/status [patch]
func (h *AccountHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidStatus
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidStatus
	}

	account, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.AccountStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	h.refreshPoolGauge(c)
	return c.JSON(http.StatusOK, account)
}

// Import replaces the whole pool with records parsed from a server-local
// txt file. Always a destructive replacement, never a merge.
//
// @Summary      Import accounts from a txt file
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      importRequest  true  "Server-local file path"
// @Success      200   {object}  importResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/accounts/import [post]
func (h *AccountHandler) Import(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil || req.FilePath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file path is required")
	}

	result, err := h.service.ImportFromFile(c.Request().Context(), req.FilePath)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.ImportsTotal.WithLabelValues("ok").Inc()
	h.refreshPoolGauge(c)
	return c.JSON(http.StatusOK, importResponse{
		Message: fmt.Sprintf("Imported %d accounts", result.Count),
		Count:   result.Count,
	})
}

// refreshPoolGauge recounts the pool after a mutation. Gauge staleness is
// tolerable, so a failed recount is simply skipped.
func (h *AccountHandler) refreshPoolGauge(c echo.Context) {
	accounts, err := h.service.ListAccounts(c.Request().Context())
	if err != nil {
		return
	}
	metrics.SetPoolSize(accounts)
}
