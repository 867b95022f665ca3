package ports

import (
	"context"

	"github.com/arleti/materials-system/internal/core/domain"
)

// AccountRepository is the durable account store. All conditional operations
// (Create, Activate, Delete) must be atomic against concurrent calls touching
// the same email or id; the service layer performs no locking of its own.
type AccountRepository interface {
	// Create inserts the account if no account with the same email exists.
	// The existence check and the insert are a single atomic operation;
	// a duplicate email fails with domain.ErrEmailTaken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)

	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)

	// FindAdmin returns the administrator account (single-admin deployment).
	FindAdmin(ctx context.Context) (*domain.Account, error)

	// Activate transitions a pending worker to active and returns the updated
	// account. Approval is a one-shot transition: unknown ids, non-workers
	// and already-active workers all fail with domain.ErrWorkerNotFound.
	Activate(ctx context.Context, id string) (*domain.Account, error)

	// Delete removes the worker whose id AND email both match. Admins are
	// never deletable through this path. Any mismatch fails with
	// domain.ErrWorkerNotFound.
	Delete(ctx context.Context, id, email string) error

	// UpdateCredential replaces the stored credential hash for the account.
	UpdateCredential(ctx context.Context, id, credentialHash string) error

	// ListWorkers returns all worker accounts in insertion order.
	ListWorkers(ctx context.Context) ([]*domain.Account, error)
}
