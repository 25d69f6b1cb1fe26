package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// CaseStatus is the lifecycle state of a case
type CaseStatus string

const (
	StatusPending    CaseStatus = "Pending"
	StatusInProgress CaseStatus = "InProgress"
	StatusClosed     CaseStatus = "Closed"
	StatusArchived   CaseStatus = "Archived"
)

// AllStatuses lists the lifecycle states in display order
var AllStatuses = []CaseStatus{StatusPending, StatusInProgress, StatusClosed, StatusArchived}

// IsValid reports whether s is one of the four lifecycle states
func (s CaseStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusClosed, StatusArchived:
		return true
	}
	return false
}

// Priority is the urgency of a case
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IsValid reports whether p is a known priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Case represents a legal case assigned to a prosecutor
type Case struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	Status      CaseStatus `json:"status" db:"status"`
	Priority    Priority   `json:"priority" db:"priority"`
	FiscalID    int64      `json:"fiscalId" db:"fiscal_id"`

	// Version is bumped on every write and used to reject stale updates
	Version int64 `json:"version" db:"version"`
}

// CaseForm represents the data needed to open a new case
type CaseForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      CaseStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	FiscalID    int64      `json:"fiscalId"`
}

// Validate validates the case form data
func (f *CaseForm) Validate() []string {
	var errors []string

	errors = append(errors, validateTitle(f.Title)...)

	if f.Status != "" && !f.Status.IsValid() {
		errors = append(errors, fmt.Sprintf("Status %q is not a valid case status", f.Status))
	} else if f.Status != "" && f.Status != StatusPending {
		errors = append(errors, "New cases must start in Pending status")
	}

	if f.Priority != "" && !f.Priority.IsValid() {
		errors = append(errors, fmt.Sprintf("Priority %q is not a valid priority", f.Priority))
	}

	if f.FiscalID <= 0 {
		errors = append(errors, "Assigned prosecutor is required")
	}

	return errors
}

// CaseUpdate is a partial set of proposed changes to a case.
// Nil fields are left untouched.
type CaseUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *CaseStatus `json:"status,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	FiscalID    *int64      `json:"fiscalId,omitempty"`
}

// Validate checks the shape of the proposed changes without touching storage
func (u *CaseUpdate) Validate() []string {
	var errors []string

	if u.Title != nil {
		errors = append(errors, validateTitle(*u.Title)...)
	}
	if u.Status != nil && !u.Status.IsValid() {
		errors = append(errors, fmt.Sprintf("Status %q is not a valid case status", *u.Status))
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		errors = append(errors, fmt.Sprintf("Priority %q is not a valid priority", *u.Priority))
	}
	if u.FiscalID != nil && *u.FiscalID <= 0 {
		errors = append(errors, "Assigned prosecutor ID must be positive")
	}

	return errors
}

// CaseFilter narrows a case listing. Zero values are ignored.
type CaseFilter struct {
	FiscalID   int64
	FiscaliaID int64
	Status     CaseStatus
	Priority   Priority
}

// StatusCount is one row of the cases-by-status report
type StatusCount struct {
	Status CaseStatus `json:"status"`
	Count  int        `json:"count"`
}

// maxTitleLength is counted in characters, not bytes
const maxTitleLength = 255

func validateTitle(title string) []string {
	var errors []string
	if strings.TrimSpace(title) == "" {
		errors = append(errors, "Title is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > maxTitleLength {
		errors = append(errors, fmt.Sprintf("Title must be at most %d characters", maxTitleLength))
	}
	return errors
}
