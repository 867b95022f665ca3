package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/arleti/materials-system/internal/core/domain"
)

func execErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error response is not JSON: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{fmt.Errorf("%w: email must be a valid address", domain.ErrInvalidInput),
			http.StatusBadRequest, "invalid input: email must be a valid address"},
		{domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrCurrentPassword, http.StatusUnauthorized, "current password incorrect"},
		{domain.ErrPendingApproval, http.StatusForbidden, "account pending approval"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrWorkerNotFound, http.StatusNotFound, "worker not found or not authorized"},
		{domain.ErrAdminNotFound, http.StatusNotFound, "administrator not found"},
		{domain.ErrAccountNotFound, http.StatusNotFound, "account not found"},
		{domain.ErrMaterialNotFound, http.StatusNotFound, "material not found"},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, msg := execErrorHandler(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if msg != tc.wantMsg {
				t.Errorf("msg = %q, want %q", msg, tc.wantMsg)
			}
		})
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := execErrorHandler(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many failed attempts, try again later"))
	if code != http.StatusTooManyRequests {
		t.Errorf("code = %d, want 429", code)
	}
	if msg != "too many failed attempts, try again later" {
		t.Errorf("msg = %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	cause := fmt.Errorf("%w: crypto/bcrypt: hashedSecret too short", domain.ErrCorruptCredential)

	code, msg := execErrorHandler(t, cause)
	if code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Errorf("msg = %q, internals leaked to client", msg)
	}
}
