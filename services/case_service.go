package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fiscalia/case-tracker/metrics"
	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
	"github.com/fiscalia/case-tracker/userctx"
)

// CaseService interface defines case management business logic.
// UpdateCase is the only path that mutates an existing case.
type CaseService interface {
	CreateCase(ctx context.Context, form *models.CaseForm) (*models.Case, error)
	GetCase(ctx context.Context, id int64) (*models.Case, error)
	ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	UpdateCase(ctx context.Context, id int64, update *models.CaseUpdate) (*models.Case, error)
	DeleteCase(ctx context.Context, id int64) error
}

// caseService implements CaseService interface
type caseService struct {
	caseRepo       repositories.CaseRepository
	fiscalRepo     repositories.FiscalRepository
	auditRecorder  AuditRecorder
	failedRecorder FailedReassignmentRecorder
	metrics        *metrics.Metrics
	logger         *slog.Logger
	now            func() time.Time
}

// NewCaseService creates a new case service
func NewCaseService(
	caseRepo repositories.CaseRepository,
	fiscalRepo repositories.FiscalRepository,
	auditRecorder AuditRecorder,
	failedRecorder FailedReassignmentRecorder,
	m *metrics.Metrics,
	logger *slog.Logger,
) CaseService {
	return &caseService{
		caseRepo:       caseRepo,
		fiscalRepo:     fiscalRepo,
		auditRecorder:  auditRecorder,
		failedRecorder: failedRecorder,
		metrics:        m,
		logger:         logger,
		now:            timeNow,
	}
}

// CreateCase opens a new case in Pending status and records its creation
func (s *caseService) CreateCase(ctx context.Context, form *models.CaseForm) (*models.Case, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if _, err := s.activeFiscal(ctx, form.FiscalID); err != nil {
		return nil, err
	}

	priority := form.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := s.now()
	c := &models.Case{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Status:      models.StatusPending,
		Priority:    priority,
		FiscalID:    form.FiscalID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.caseRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	s.recordAudit(ctx, AuditRecord{
		CaseID:   c.ID,
		FiscalID: c.FiscalID,
		Kind:     MutationCreate,
		Changes:  []string{fmt.Sprintf("%q assigned to prosecutor %d", c.Title, c.FiscalID)},
	})
	s.metrics.IncrementCaseMutation(string(models.ActionCreated))

	return c, nil
}

// GetCase retrieves a case by ID
func (s *caseService) GetCase(ctx context.Context, id int64) (*models.Case, error) {
	if id <= 0 {
		return nil, newError(KindValidation, "invalid case ID: %d", id)
	}

	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get case")
	}
	return c, nil
}

// ListCases retrieves cases matching the filter
func (s *caseService) ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, newError(KindValidation, "status %q is not a valid case status", filter.Status)
	}
	if filter.Priority != "" && !filter.Priority.IsValid() {
		return nil, newError(KindValidation, "priority %q is not a valid priority", filter.Priority)
	}

	cases, err := s.caseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// UpdateCase applies a partial update. Reassignment rules are checked against the
// status held before this request, then the status transition, then the write.
// A rejected reassignment leaves the case untouched and appends a failed log entry.
func (s *caseService) UpdateCase(ctx context.Context, id int64, update *models.CaseUpdate) (*models.Case, error) {
	defer s.metrics.ObserveUpdateCase(s.now())

	if id <= 0 {
		return nil, newError(KindValidation, "invalid case ID: %d", id)
	}
	if errs := update.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get case")
	}

	statusBefore := c.Status
	var changes []string

	if update.FiscalID != nil && *update.FiscalID != c.FiscalID {
		if err := s.checkReassignment(ctx, c, *update.FiscalID); err != nil {
			return nil, err
		}
		changes = append(changes, fmt.Sprintf("reassigned from prosecutor %d to %d", c.FiscalID, *update.FiscalID))
	}

	if update.Status != nil {
		next, err := RequestTransition(c.Status, *update.Status)
		if err != nil {
			return nil, err
		}
		c.Status = next
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title != c.Title {
			changes = append(changes, "title updated")
			c.Title = title
		}
	}
	if update.Description != nil {
		description := strings.TrimSpace(*update.Description)
		if description != c.Description {
			changes = append(changes, "description updated")
			c.Description = description
		}
	}
	if update.Priority != nil && *update.Priority != c.Priority {
		changes = append(changes, fmt.Sprintf("priority changed from %s to %s", c.Priority, *update.Priority))
		c.Priority = *update.Priority
	}
	if update.FiscalID != nil {
		c.FiscalID = *update.FiscalID
	}

	c.UpdatedAt = s.now()

	if err := s.caseRepo.Update(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrStaleCase) {
			s.metrics.IncrementStaleUpdate()
		}
		return nil, fromRepository(err, "update case")
	}

	record := AuditRecord{
		CaseID:       c.ID,
		FiscalID:     c.FiscalID,
		Kind:         MutationUpdate,
		StatusBefore: statusBefore,
		StatusAfter:  update.Status,
		Changes:      changes,
	}
	s.recordAudit(ctx, record)
	s.metrics.IncrementCaseMutation(string(ClassifyMutation(record.Kind, record.StatusBefore, record.StatusAfter)))

	return c, nil
}

// checkReassignment resolves both prosecutors and applies the reassignment rules.
// Blocked attempts are logged best-effort and returned as ReassignmentBlocked.
// An inactive destination is only reported once the rules allow the move.
func (s *caseService) checkReassignment(ctx context.Context, c *models.Case, destinationID int64) error {
	origin, err := s.fiscalRepo.GetByID(ctx, c.FiscalID)
	if err != nil {
		return fromRepository(err, "get origin prosecutor")
	}
	destination, err := s.fiscalRepo.GetByID(ctx, destinationID)
	if err != nil {
		return fromRepository(err, "get destination prosecutor")
	}

	decision := ValidateReassignment(c.Status, origin, destination)
	if decision.Allowed {
		if !destination.Active {
			return newError(KindValidation, "prosecutor %d is inactive and cannot receive cases", destinationID)
		}
		return nil
	}

	s.metrics.IncrementReassignmentBlocked(decision.Rule)

	if _, err := s.failedRecorder.Record(ctx, c.ID, origin.ID, destination.ID, decision.Reason, s.now()); err != nil {
		s.metrics.IncrementFailedLogWriteFailure()
		s.logger.ErrorContext(ctx, "failed to record blocked reassignment",
			"case_id", c.ID,
			"origin_fiscal_id", origin.ID,
			"destination_fiscal_id", destination.ID,
			"error", err,
		)
	}

	s.logger.InfoContext(ctx, "reassignment blocked",
		"case_id", c.ID,
		"rule", decision.Rule,
		"actor", userctx.GetUserEmail(ctx),
	)

	return newError(KindReassignmentBlocked, "%s", decision.Reason)
}

// DeleteCase removes a case. Its audit trail and failed reassignment log are kept.
func (s *caseService) DeleteCase(ctx context.Context, id int64) error {
	if id <= 0 {
		return newError(KindValidation, "invalid case ID: %d", id)
	}

	if err := s.caseRepo.Delete(ctx, id); err != nil {
		return fromRepository(err, "delete case")
	}

	s.logger.InfoContext(ctx, "case deleted", "case_id", id, "actor", userctx.GetUserEmail(ctx))
	return nil
}

// activeFiscal loads a prosecutor that may hold cases
func (s *caseService) activeFiscal(ctx context.Context, id int64) (*models.Fiscal, error) {
	fiscal, err := s.fiscalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get prosecutor")
	}
	if !fiscal.Active {
		return nil, newError(KindValidation, "prosecutor %d is inactive and cannot receive cases", id)
	}
	return fiscal, nil
}

// recordAudit appends the audit entry for a committed mutation. The case write
// has already happened, so a failure here is logged and counted but not returned.
func (s *caseService) recordAudit(ctx context.Context, record AuditRecord) {
	entry, err := s.auditRecorder.Record(ctx, record)
	if err != nil {
		s.metrics.IncrementAuditWriteFailure()
		s.logger.ErrorContext(ctx, "audit write failed after case mutation",
			"case_id", record.CaseID,
			"actor", userctx.GetUserEmail(ctx),
			"error", err,
		)
		return
	}

	s.logger.InfoContext(ctx, "case mutation recorded",
		"case_id", entry.CaseID,
		"action", entry.Action,
		"fiscal_id", entry.FiscalID,
		"actor", userctx.GetUserEmail(ctx),
	)
}
