package handler

import (
	"time"

	"github.com/arleti/materials-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard success envelope for mutating operations.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type removeWorkerRequest struct {
	// Email must match the stored email for the worker id being removed.
	Email string `json:"email" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// --- Response types ---

// accountResponse is the sanitized account view. It never carries the
// credential hash.
type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// workerResponse is the projection used by the worker list.
type workerResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type auditEventResponse struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		Status:    int(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

func toWorkerResponse(a *domain.Account) workerResponse {
	return workerResponse{
		ID:        a.ID,
		Email:     a.Email,
		Status:    int(a.Status),
		CreatedAt: a.CreatedAt,
	}
}
