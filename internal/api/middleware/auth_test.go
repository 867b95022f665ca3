package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/arleti/materials-system/internal/core/domain"
)

type stubAccounts struct {
	loginFn func(ctx context.Context, email, password string) (*domain.Account, error)
}

func (s *stubAccounts) Register(context.Context, string, string) (*domain.Account, error) {
	panic("not used")
}

func (s *stubAccounts) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccounts) Approve(context.Context, string) (*domain.Account, error) {
	panic("not used")
}

func (s *stubAccounts) Remove(context.Context, string, string) error {
	panic("not used")
}

func (s *stubAccounts) ListWorkers(context.Context) ([]*domain.Account, error) {
	panic("not used")
}

func (s *stubAccounts) ChangeAdminPassword(context.Context, string, string) error {
	panic("not used")
}

func newAuthContext(basicUser, basicPassword string, withCredentials bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/workers", nil)
	if withCredentials {
		req.SetBasicAuth(basicUser, basicPassword)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuth_MissingCredentials(t *testing.T) {
	mw := Auth(&stubAccounts{})
	c, rec := newAuthContext("", "", false)

	err := mw(okHandler)(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 HTTPError", err)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got == "" {
		t.Error("missing WWW-Authenticate challenge")
	}
}

func TestAuth_InvalidCredentials(t *testing.T) {
	accounts := &stubAccounts{
		loginFn: func(_ context.Context, _, _ string) (*domain.Account, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	mw := Auth(accounts)
	c, rec := newAuthContext("ana@example.com", "wrong", true)

	if err := mw(okHandler)(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got == "" {
		t.Error("missing WWW-Authenticate challenge")
	}
}

func TestAuth_PendingWorker(t *testing.T) {
	accounts := &stubAccounts{
		loginFn: func(_ context.Context, _, _ string) (*domain.Account, error) {
			return nil, domain.ErrPendingApproval
		},
	}
	mw := Auth(accounts)
	c, _ := newAuthContext("ana@example.com", "secret1", true)

	if err := mw(okHandler)(c); !errors.Is(err, domain.ErrPendingApproval) {
		t.Fatalf("err = %v, want ErrPendingApproval", err)
	}
}

func TestAuth_SetsContextOnSuccess(t *testing.T) {
	accounts := &stubAccounts{
		loginFn: func(_ context.Context, email, password string) (*domain.Account, error) {
			if email != "admin@example.com" || password != "secret1" {
				t.Errorf("Login called with (%q, %q)", email, password)
			}
			return &domain.Account{
				ID:     "acc-1",
				Email:  email,
				Role:   domain.RoleAdmin,
				Status: domain.StatusActive,
			}, nil
		},
	}
	mw := Auth(accounts)
	c, _ := newAuthContext("admin@example.com", "secret1", true)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		if role, _ := c.Get("role").(string); role != domain.RoleAdmin {
			t.Errorf("role in context = %q, want admin", role)
		}
		if email, _ := c.Get("email").(string); email != "admin@example.com" {
			t.Errorf("email in context = %q", email)
		}
		account, _ := c.Get("account").(*domain.Account)
		if account == nil || account.ID != "acc-1" {
			t.Errorf("account in context = %+v", account)
		}
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("next handler was not called")
	}
}
