package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
)

// LogService exposes the audit trail and the failed reassignment log.
// Both logs are append-only: there is no update or delete.
type LogService interface {
	ListAuditEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error)
	GetAuditEntry(ctx context.Context, id int64) (*models.AuditEntry, error)
	CreateAuditEntry(ctx context.Context, form *models.AuditEntryForm) (*models.AuditEntry, error)

	ListFailedReassignments(ctx context.Context, filter models.ReassignmentFilter) ([]models.FailedReassignmentLog, error)
	GetFailedReassignment(ctx context.Context, id int64) (*models.FailedReassignmentLog, error)
	CreateFailedReassignment(ctx context.Context, form *models.FailedReassignmentForm) (*models.FailedReassignmentLog, error)
}

type logService struct {
	auditRepo repositories.AuditRepository
	logRepo   repositories.ReassignmentLogRepository
	now       func() time.Time
}

// NewLogService creates a new log service
func NewLogService(auditRepo repositories.AuditRepository, logRepo repositories.ReassignmentLogRepository) LogService {
	return &logService{
		auditRepo: auditRepo,
		logRepo:   logRepo,
		now:       timeNow,
	}
}

func (s *logService) ListAuditEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error) {
	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

func (s *logService) GetAuditEntry(ctx context.Context, id int64) (*models.AuditEntry, error) {
	if id <= 0 {
		return nil, newError(KindValidation, "invalid audit entry ID: %d", id)
	}
	entry, err := s.auditRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get audit entry")
	}
	return entry, nil
}

// CreateAuditEntry appends a manual audit entry. The timestamp defaults to now.
func (s *logService) CreateAuditEntry(ctx context.Context, form *models.AuditEntryForm) (*models.AuditEntry, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	entry := &models.AuditEntry{
		CaseID:      form.CaseID,
		FiscalID:    form.FiscalID,
		Action:      form.Action,
		Description: strings.TrimSpace(form.Description),
		Timestamp:   s.now(),
	}
	if form.Timestamp != nil {
		entry.Timestamp = *form.Timestamp
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create audit entry: %w", err)
	}
	return entry, nil
}

func (s *logService) ListFailedReassignments(ctx context.Context, filter models.ReassignmentFilter) ([]models.FailedReassignmentLog, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, newError(KindValidation, "date range end must not be before its start")
	}

	entries, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list failed reassignments: %w", err)
	}
	return entries, nil
}

func (s *logService) GetFailedReassignment(ctx context.Context, id int64) (*models.FailedReassignmentLog, error) {
	if id <= 0 {
		return nil, newError(KindValidation, "invalid failed reassignment ID: %d", id)
	}
	entry, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get failed reassignment")
	}
	return entry, nil
}

// CreateFailedReassignment appends a manual failed reassignment entry. The attempt time defaults to now.
func (s *logService) CreateFailedReassignment(ctx context.Context, form *models.FailedReassignmentForm) (*models.FailedReassignmentLog, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	entry := &models.FailedReassignmentLog{
		CaseID:              form.CaseID,
		OriginFiscalID:      form.OriginFiscalID,
		DestinationFiscalID: form.DestinationFiscalID,
		BlockReason:         strings.TrimSpace(form.BlockReason),
		AttemptedAt:         s.now(),
	}
	if form.AttemptedAt != nil {
		entry.AttemptedAt = *form.AttemptedAt
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create failed reassignment: %w", err)
	}
	return entry, nil
}
