package services

import (
	"fmt"

	"github.com/fiscalia/case-tracker/models"
)

// Reassignment rules, in evaluation order. Used as metric labels.
const (
	RuleCaseStatus         = "case_status"
	RuleOrganizationalUnit = "organizational_unit"
)

// ReassignmentDecision is the outcome of ValidateReassignment.
// Rule and Reason are empty when Allowed is true.
type ReassignmentDecision struct {
	Allowed bool
	Rule    string
	Reason  string
}

// ValidateReassignment decides whether a case may move from origin to destination.
// statusBefore must be the status held before the request's own mutation.
// Checks run in a fixed order and the first failure determines the reason.
func ValidateReassignment(statusBefore models.CaseStatus, origin, destination *models.Fiscal) ReassignmentDecision {
	if statusBefore != models.StatusPending {
		return ReassignmentDecision{
			Rule: RuleCaseStatus,
			Reason: fmt.Sprintf(
				"case cannot be reassigned because its status is %s; only %s cases are reassignable",
				statusBefore, models.StatusPending,
			),
		}
	}

	if origin.FiscaliaID != destination.FiscaliaID {
		return ReassignmentDecision{
			Rule: RuleOrganizationalUnit,
			Reason: fmt.Sprintf(
				"case cannot be reassigned because the destination prosecutor belongs to a different fiscalia (origin fiscalia ID %d, destination fiscalia ID %d)",
				origin.FiscaliaID, destination.FiscaliaID,
			),
		}
	}

	return ReassignmentDecision{Allowed: true}
}
