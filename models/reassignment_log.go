package models

import (
	"strings"
	"time"
)

// FailedReassignmentLog is an immutable record of a rejected reassignment attempt
type FailedReassignmentLog struct {
	ID                  int64     `json:"id" db:"id"`
	CaseID              int64     `json:"caseId" db:"case_id"`
	OriginFiscalID      int64     `json:"originProsecutorId" db:"origin_fiscal_id"`
	DestinationFiscalID int64     `json:"destinationProsecutorId" db:"destination_fiscal_id"`
	BlockReason         string    `json:"blockReason" db:"block_reason"`
	AttemptedAt         time.Time `json:"attemptedAt" db:"attempted_at"`
}

// FailedReassignmentForm represents a manually appended failed reassignment
type FailedReassignmentForm struct {
	CaseID              int64      `json:"caseId"`
	OriginFiscalID      int64      `json:"originProsecutorId"`
	DestinationFiscalID int64      `json:"destinationProsecutorId"`
	BlockReason         string     `json:"blockReason"`
	AttemptedAt         *time.Time `json:"attemptedAt,omitempty"`
}

// Validate validates the failed reassignment form data
func (f *FailedReassignmentForm) Validate() []string {
	var errors []string

	if f.CaseID <= 0 {
		errors = append(errors, "Case ID is required")
	}
	if f.OriginFiscalID <= 0 {
		errors = append(errors, "Origin prosecutor ID is required")
	}
	if f.DestinationFiscalID <= 0 {
		errors = append(errors, "Destination prosecutor ID is required")
	}
	if strings.TrimSpace(f.BlockReason) == "" {
		errors = append(errors, "Block reason is required")
	}

	return errors
}

// ReassignmentFilter narrows a failed reassignment listing
type ReassignmentFilter struct {
	CaseID              int64
	OriginFiscalID      int64
	DestinationFiscalID int64
	From                *time.Time
	To                  *time.Time
}

// ReportFilter narrows the per-fiscalia failed reassignment report
type ReportFilter struct {
	FiscaliaID int64
	From       *time.Time
	To         *time.Time
}

// FiscaliaReassignmentReport aggregates failed attempts by the origin prosecutor's fiscalia
type FiscaliaReassignmentReport struct {
	FiscaliaID     int64      `json:"fiscaliaId"`
	FiscaliaName   string     `json:"fiscaliaName"`
	FailedAttempts int        `json:"failedAttempts"`
	CasesAffected  int        `json:"casesAffected"`
	LastAttemptAt  *time.Time `json:"lastAttemptAt,omitempty"`
}
