package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
)

// FailedReassignmentRecorder appends a log entry for a rejected reassignment.
// It never touches the case itself.
type FailedReassignmentRecorder interface {
	Record(ctx context.Context, caseID, originFiscalID, destinationFiscalID int64, reason string, attemptedAt time.Time) (*models.FailedReassignmentLog, error)
}

type failedReassignmentRecorder struct {
	logRepo repositories.ReassignmentLogRepository
}

// NewFailedReassignmentRecorder creates a recorder backed by the reassignment log repository
func NewFailedReassignmentRecorder(logRepo repositories.ReassignmentLogRepository) FailedReassignmentRecorder {
	return &failedReassignmentRecorder{logRepo: logRepo}
}

// Record appends one entry. There is no retry; callers treat an error as non-fatal.
func (r *failedReassignmentRecorder) Record(ctx context.Context, caseID, originFiscalID, destinationFiscalID int64, reason string, attemptedAt time.Time) (*models.FailedReassignmentLog, error) {
	entry := &models.FailedReassignmentLog{
		CaseID:              caseID,
		OriginFiscalID:      originFiscalID,
		DestinationFiscalID: destinationFiscalID,
		BlockReason:         reason,
		AttemptedAt:         attemptedAt,
	}

	if err := r.logRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record failed reassignment for case %d: %w", caseID, err)
	}

	return entry, nil
}
