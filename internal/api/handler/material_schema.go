package handler

import "github.com/arleti/materials-system/internal/core/domain"

type materialRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

type materialResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

func toMaterialResponse(m *domain.Material) materialResponse {
	return materialResponse{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Quantity: m.Quantity,
		Unit:     m.Unit,
		Price:    m.Price,
	}
}
