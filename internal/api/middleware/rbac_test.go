package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/arleti/materials-system/internal/core/domain"
)

func newRBACContext(role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/workers", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set("role", role)
	}
	return c
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)
	c := newRBACContext(domain.RoleAdmin)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("next handler was not called")
	}
}

func TestRBAC_RejectsOtherRoles(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)

	for _, role := range []string{domain.RoleWorker, "", "unknown"} {
		c := newRBACContext(role)
		err := mw(okHandler)(c)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %q: err = %v, want ErrForbidden", role, err)
		}
	}
}

func TestRBAC_MissingRoleValue(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)
	c := newRBACContext("")

	if err := mw(okHandler)(c); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}
