package domain

import "errors"

var ErrMaterialNotFound = errors.New("material not found")

// Material is a tracked inventory item.
type Material struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}
