package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
)

// MaterialService implements inventory CRUD. Materials have no invariants
// beyond field-level validation; this is plain persistence.
type MaterialService struct {
	repo ports.MaterialRepository
	log  zerolog.Logger
}

func NewMaterialService(repo ports.MaterialRepository, log zerolog.Logger) *MaterialService {
	return &MaterialService{repo: repo, log: log}
}

func (s *MaterialService) Create(ctx context.Context, input ports.MaterialInput) (*domain.Material, error) {
	if err := validateMaterial(input); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Material{
		Name:     input.Name,
		Category: input.Category,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		Price:    input.Price,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("material_id", created.ID).Str("name", created.Name).Msg("material created")
	return created, nil
}

func (s *MaterialService) Get(ctx context.Context, id string) (*domain.Material, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MaterialService) List(ctx context.Context) ([]*domain.Material, error) {
	return s.repo.List(ctx)
}

func (s *MaterialService) Update(ctx context.Context, id string, input ports.MaterialInput) (*domain.Material, error) {
	if err := validateMaterial(input); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &domain.Material{
		ID:       id,
		Name:     input.Name,
		Category: input.Category,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		Price:    input.Price,
	})
}

func (s *MaterialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("material_id", id).Msg("material deleted")
	return nil
}

func validateMaterial(input ports.MaterialInput) error {
	if input.Name == "" || input.Category == "" || input.Unit == "" {
		return fmt.Errorf("%w: name, category and unit are required", domain.ErrInvalidInput)
	}
	if input.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidInput)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}
