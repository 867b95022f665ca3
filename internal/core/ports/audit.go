package ports

import (
	"context"

	"github.com/arleti/materials-system/internal/core/domain"
)

// AuditRecorder accepts account lifecycle events for asynchronous recording.
// Record must not block the calling request beyond queue capacity.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditService persists a single audit event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository is the audit trail store.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditEvent, error)
}
