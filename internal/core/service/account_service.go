package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
)

const minPasswordLength = 6

// AccountService implements the account lifecycle, authentication and
// credential rotation. It performs no locking of its own; atomicity of
// conditional operations is delegated to the repository.
type AccountService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, audit ports.AuditRecorder, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, audit: audit, log: log}
}

// Register creates a pending worker account. The duplicate-email check and
// the insert are one atomic repository operation; two concurrent
// registrations with the same email cannot both succeed.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:          email,
		CredentialHash: hash,
		Role:           domain.RoleWorker,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("account_id", created.ID).Msg("worker registered, pending approval")
	s.record(created, domain.AuditRegistered)

	return created, nil
}

// Login authenticates an account by email and password.
//
// The pending-approval gate runs before the password is verified: an
// unapproved worker always sees "pending approval", never a hint about
// whether their password was right. Unknown emails and wrong passwords are
// deliberately indistinguishable.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if account.IsPendingWorker() {
		return nil, domain.ErrPendingApproval
	}

	ok, err := s.hasher.Verify(password, account.CredentialHash)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID).Msg("stored credential unreadable")
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return account.Sanitized(), nil
}

// Approve flips a pending worker to active. Approval is a one-shot
// transition: unknown ids and already-active workers are both "nothing to
// approve" and fail identically.
func (s *AccountService) Approve(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.repo.Activate(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("email", account.Email).Msg("worker approved")
	s.record(account, domain.AuditApproved)

	return account.Sanitized(), nil
}

// Remove deletes a worker. The caller-supplied email must match the stored
// email for that id; a mismatch and an unknown id fail identically so the
// caller cannot enumerate accounts.
func (s *AccountService) Remove(ctx context.Context, id, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, id, email); err != nil {
		return err
	}

	s.log.Info().Str("account_id", id).Str("email", email).Msg("worker removed")
	s.record(&domain.Account{ID: id, Email: email}, domain.AuditRemoved)

	return nil
}

// ListWorkers returns all worker accounts in insertion order, sanitized.
func (s *AccountService) ListWorkers(ctx context.Context) ([]*domain.Account, error) {
	workers, err := s.repo.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*domain.Account, 0, len(workers))
	for _, w := range workers {
		sanitized = append(sanitized, w.Sanitized())
	}
	return sanitized, nil
}

// ChangeAdminPassword rotates the administrator credential. The service
// locates the administrator itself (single-admin deployment); no account id
// is taken.
func (s *AccountService) ChangeAdminPassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return fmt.Errorf("%w: current password is required", domain.ErrInvalidInput)
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	admin, err := s.repo.FindAdmin(ctx)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(currentPassword, admin.CredentialHash)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", admin.ID).Msg("stored credential unreadable")
		return err
	}
	if !ok {
		return domain.ErrCurrentPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateCredential(ctx, admin.ID, hash); err != nil {
		return err
	}

	s.log.Info().Str("account_id", admin.ID).Msg("administrator password changed")
	s.record(admin, domain.AuditPasswordChanged)

	return nil
}

func (s *AccountService) record(account *domain.Account, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		AccountID: account.ID,
		Email:     account.Email,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: email must be a valid address", domain.ErrInvalidInput)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	return nil
}
