package ports

import (
	"context"

	"github.com/arleti/materials-system/internal/core/domain"
)

// MaterialRepository defines persistence operations for inventory materials.
type MaterialRepository interface {
	Create(ctx context.Context, m *domain.Material) (*domain.Material, error)
	FindByID(ctx context.Context, id string) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	// Update replaces all fields of the material; unknown ids fail with
	// domain.ErrMaterialNotFound.
	Update(ctx context.Context, m *domain.Material) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
}
