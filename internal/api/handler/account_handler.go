package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arleti/materials-system/internal/api/metrics"
	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
)

// LoginThrottle limits failed login attempts per email (Redis-backed).
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AccountHandler handles registration, login and worker administration.
type AccountHandler struct {
	accounts ports.AccountService
	throttle LoginThrottle
}

func NewAccountHandler(accounts ports.AccountService, throttle LoginThrottle) *AccountHandler {
	return &AccountHandler{accounts: accounts, throttle: throttle}
}

// Register creates a pending worker account.
//
// @Summary      Register a new worker account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.accounts.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "registration successful, awaiting administrator approval",
	})
}

// Login authenticates an account and returns the sanitized account object.
// No session token is issued; protected endpoints authenticate per request.
//
// @Summary      Log in
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		// Fail open when the throttle backend is unavailable.
		if blocked, err := h.throttle.Blocked(ctx, req.Email); err == nil && blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many failed attempts, try again later")
		}
	}

	account, err := h.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPendingApproval):
			metrics.LoginsTotal.WithLabelValues("pending").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			if h.throttle != nil {
				_ = h.throttle.RecordFailure(ctx, req.Email)
			}
		}
		return err
	}

	if h.throttle != nil {
		_ = h.throttle.Reset(ctx, req.Email)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// ListWorkers returns all worker accounts in insertion order.
//
// @Summary      List worker accounts
// @Tags         workers
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   workerResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/workers [get]
func (h *AccountHandler) ListWorkers(c echo.Context) error {
	workers, err := h.accounts.ListWorkers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]workerResponse, 0, len(workers))
	for _, w := range workers {
		resp = append(resp, toWorkerResponse(w))
	}
	return c.JSON(http.StatusOK, resp)
}

// Approve activates a pending worker.
//
// @Summary      Approve a pending worker
// @Tags         workers
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "Worker account id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/workers/{id}/approve [put]
func (h *AccountHandler) Approve(c echo.Context) error {
	if _, err := h.accounts.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ApprovalsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "worker approved"})
}

// Remove deletes a worker. The request body must carry the worker's email as
// a double-key check against stale ids.
//
// @Summary      Remove a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string               true  "Worker account id"
// @Param        body  body      removeWorkerRequest  true  "Confirming email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/workers/{id} [delete]
func (h *AccountHandler) Remove(c echo.Context) error {
	var req removeWorkerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	if err := h.accounts.Remove(c.Request().Context(), c.Param("id"), req.Email); err != nil {
		return err
	}

	metrics.RemovalsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "worker removed"})
}
