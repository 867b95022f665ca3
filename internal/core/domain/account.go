package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// AccountStatus is the approval state of an account. Worker accounts are
// created Pending and flip to Active exactly once, on admin approval.
type AccountStatus int

const (
	StatusPending AccountStatus = 0
	StatusActive  AccountStatus = 1
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account pending approval")
	ErrForbidden          = errors.New("access forbidden")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWorkerNotFound     = errors.New("worker not found or not authorized")
	ErrAdminNotFound      = errors.New("administrator not found")
	ErrCurrentPassword    = errors.New("current password incorrect")
	ErrCorruptCredential  = errors.New("stored credential unreadable")
)

// Account models an authenticated actor in the system.
// CredentialHash is opaque outside the password hasher and never serialized.
type Account struct {
	ID             string        `json:"id"`
	Email          string        `json:"email"`
	CredentialHash string        `json:"-"`
	Role           string        `json:"role"`
	Status         AccountStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Sanitized returns a copy of the account with the credential hash stripped.
// Every account that crosses the service boundary outward goes through this.
func (a *Account) Sanitized() *Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.CredentialHash = ""
	return &clone
}

// IsPendingWorker reports whether the account is a worker awaiting approval.
func (a *Account) IsPendingWorker() bool {
	return a.Role == RoleWorker && a.Status == StatusPending
}
