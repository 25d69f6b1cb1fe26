package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
)

// MutationKind tells the audit recorder whether a case was created or modified
type MutationKind int

const (
	MutationCreate MutationKind = iota
	MutationUpdate
)

// AuditRecord describes one committed case mutation
type AuditRecord struct {
	CaseID int64
	// FiscalID is the prosecutor assigned to the case after the mutation
	FiscalID     int64
	Kind         MutationKind
	StatusBefore models.CaseStatus
	// StatusAfter is nil when the request did not carry a status
	StatusAfter *models.CaseStatus
	// Changes are short human-readable notes such as "title updated"
	Changes []string
}

// ClassifyMutation maps a mutation to its audit action. Rules are exclusive and
// evaluated in order: creation, then an actual status change, then anything else.
// A reassignment with no status change is classified as Updated.
func ClassifyMutation(kind MutationKind, statusBefore models.CaseStatus, statusAfter *models.CaseStatus) models.AuditAction {
	if kind == MutationCreate {
		return models.ActionCreated
	}
	if statusAfter != nil && *statusAfter != statusBefore {
		return models.ActionStatusChanged
	}
	return models.ActionUpdated
}

// AuditRecorder classifies a committed case mutation and appends one audit entry
type AuditRecorder interface {
	Record(ctx context.Context, record AuditRecord) (*models.AuditEntry, error)
}

type auditRecorder struct {
	auditRepo repositories.AuditRepository
	now       func() time.Time
}

// NewAuditRecorder creates a recorder backed by the audit repository
func NewAuditRecorder(auditRepo repositories.AuditRepository) AuditRecorder {
	return &auditRecorder{auditRepo: auditRepo, now: timeNow}
}

// Record appends exactly one audit entry. It must only be called after the
// case mutation itself has been written.
func (r *auditRecorder) Record(ctx context.Context, record AuditRecord) (*models.AuditEntry, error) {
	action := ClassifyMutation(record.Kind, record.StatusBefore, record.StatusAfter)

	entry := &models.AuditEntry{
		CaseID:      record.CaseID,
		FiscalID:    record.FiscalID,
		Action:      action,
		Description: describeMutation(action, record),
		Timestamp:   r.now(),
	}

	if err := r.auditRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record audit entry for case %d: %w", record.CaseID, err)
	}

	return entry, nil
}

func describeMutation(action models.AuditAction, record AuditRecord) string {
	details := strings.Join(record.Changes, "; ")

	switch action {
	case models.ActionCreated:
		if details == "" {
			return "Case created"
		}
		return "Case created: " + details
	case models.ActionStatusChanged:
		desc := fmt.Sprintf("Status changed from %s to %s", record.StatusBefore, *record.StatusAfter)
		if details != "" {
			desc += "; " + details
		}
		return desc
	default:
		if details == "" {
			return "Case updated with no field changes"
		}
		return "Case updated: " + details
	}
}
