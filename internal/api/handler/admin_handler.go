package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arleti/materials-system/internal/api/metrics"
	"github.com/arleti/materials-system/internal/core/ports"
)

const auditPageSize = 50

// AdminHandler handles administrator self-service operations.
type AdminHandler struct {
	accounts ports.AccountService
	audit    ports.AuditRepository
}

func NewAdminHandler(accounts ports.AccountService, audit ports.AuditRepository) *AdminHandler {
	return &AdminHandler{accounts: accounts, audit: audit}
}

// ChangePassword rotates the administrator credential. The caller must
// re-authenticate with the new password afterwards.
//
// @Summary      Change the administrator password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/change-password [put]
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accounts.ChangeAdminPassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	metrics.PasswordChangesTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// Audit returns the most recent account lifecycle events, newest first.
//
// @Summary      List recent account audit events
// @Tags         admin
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   auditEventResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/audit [get]
func (h *AdminHandler) Audit(c echo.Context) error {
	events, err := h.audit.ListRecent(c.Request().Context(), auditPageSize)
	if err != nil {
		return err
	}

	resp := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, auditEventResponse{
			AccountID: e.AccountID,
			Email:     e.Email,
			Action:    e.Action,
			Timestamp: e.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
