package ports

import (
	"context"

	"github.com/arleti/materials-system/internal/core/domain"
)

// AccountService owns the account lifecycle, authentication and credential
// rotation. Accounts returned by Login and ListWorkers are sanitized (no
// credential hash).
type AccountService interface {
	// Register creates a pending worker account. Fails with
	// domain.ErrInvalidInput on a malformed email or short password, and
	// domain.ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, email, password string) (*domain.Account, error)

	// Login authenticates by email and password. A pending worker is rejected
	// with domain.ErrPendingApproval before the password is checked, so an
	// unapproved worker never learns whether their password was right.
	// Unknown emails and wrong passwords are indistinguishable
	// (domain.ErrInvalidCredentials).
	Login(ctx context.Context, email, password string) (*domain.Account, error)

	// Approve flips a pending worker to active (one-shot).
	Approve(ctx context.Context, id string) (*domain.Account, error)

	// Remove deletes a worker; email must match the stored email for id.
	Remove(ctx context.Context, id, email string) error

	ListWorkers(ctx context.Context) ([]*domain.Account, error)

	// ChangeAdminPassword rotates the administrator credential after
	// verifying the current password.
	ChangeAdminPassword(ctx context.Context, currentPassword, newPassword string) error
}
