package models

import "time"

// AuditAction classifies a committed case mutation
type AuditAction string

const (
	ActionCreated       AuditAction = "Created"
	ActionStatusChanged AuditAction = "StatusChanged"
	ActionUpdated       AuditAction = "Updated"
)

// IsValid reports whether a is a known audit action
func (a AuditAction) IsValid() bool {
	switch a {
	case ActionCreated, ActionStatusChanged, ActionUpdated:
		return true
	}
	return false
}

// AuditEntry is an immutable record of a committed case mutation.
// FiscalID is the prosecutor assigned to the case after the mutation, not the actor.
type AuditEntry struct {
	ID          int64       `json:"id" db:"id"`
	CaseID      int64       `json:"caseId" db:"case_id"`
	FiscalID    int64       `json:"fiscalId" db:"fiscal_id"`
	Action      AuditAction `json:"action" db:"action"`
	Description string      `json:"description" db:"description"`
	Timestamp   time.Time   `json:"timestamp" db:"timestamp"`
}

// AuditEntryForm represents a manually appended audit entry
type AuditEntryForm struct {
	CaseID      int64       `json:"caseId"`
	FiscalID    int64       `json:"fiscalId"`
	Action      AuditAction `json:"action"`
	Description string      `json:"description"`
	Timestamp   *time.Time  `json:"timestamp,omitempty"`
}

// Validate validates the audit entry form data
func (f *AuditEntryForm) Validate() []string {
	var errors []string

	if f.CaseID <= 0 {
		errors = append(errors, "Case ID is required")
	}
	if f.FiscalID <= 0 {
		errors = append(errors, "Prosecutor ID is required")
	}
	if !f.Action.IsValid() {
		errors = append(errors, "Action must be Created, StatusChanged or Updated")
	}

	return errors
}

// AuditFilter narrows an audit trail listing
type AuditFilter struct {
	CaseID   int64
	FiscalID int64
}
