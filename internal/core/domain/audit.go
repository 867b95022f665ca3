package domain

import "time"

// Audit actions recorded for account lifecycle changes.
const (
	AuditRegistered      = "registered"
	AuditApproved        = "approved"
	AuditRemoved         = "removed"
	AuditPasswordChanged = "password_changed"
)

// AuditEvent records a single account lifecycle change.
type AuditEvent struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
