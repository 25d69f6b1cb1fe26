package services

import (
	"github.com/fiscalia/case-tracker/models"
)

// caseTransitions lists the legal lifecycle edges. Archived is terminal.
var caseTransitions = map[models.CaseStatus][]models.CaseStatus{
	models.StatusPending:    {models.StatusInProgress},
	models.StatusInProgress: {models.StatusClosed, models.StatusPending},
	models.StatusClosed:     {models.StatusArchived},
	models.StatusArchived:   nil,
}

// RequestTransition validates moving a case from current to target and returns
// the resulting status. Requesting the current status is a no-op success.
func RequestTransition(current, target models.CaseStatus) (models.CaseStatus, error) {
	if !target.IsValid() {
		return current, newError(KindValidation, "status %q is not a valid case status", target)
	}
	if current == target {
		return current, nil
	}

	for _, next := range caseTransitions[current] {
		if next == target {
			return target, nil
		}
	}

	if current == models.StatusArchived {
		return current, newError(KindInvalidTransition, "case is archived and cannot change status")
	}
	return current, newError(KindInvalidTransition, "cannot change case status from %s to %s", current, target)
}

// NextStatuses returns the statuses a case in the given status may move to
func NextStatuses(current models.CaseStatus) []models.CaseStatus {
	next := caseTransitions[current]
	out := make([]models.CaseStatus, len(next))
	copy(out, next)
	return out
}
