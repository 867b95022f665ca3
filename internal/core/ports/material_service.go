package ports

import (
	"context"

	"github.com/arleti/materials-system/internal/core/domain"
)

// MaterialInput carries the writable fields of a material.
type MaterialInput struct {
	Name     string
	Category string
	Quantity int64
	Unit     string
	Price    float64
}

// MaterialService defines use-case operations for inventory materials.
type MaterialService interface {
	Create(ctx context.Context, input MaterialInput) (*domain.Material, error)
	Get(ctx context.Context, id string) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	Update(ctx context.Context, id string, input MaterialInput) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
}
