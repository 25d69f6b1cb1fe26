package services

import (
	"context"
	"fmt"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
)

// ReportService builds read-only aggregates over cases and the failed reassignment log
type ReportService interface {
	CasesByStatus(ctx context.Context, fiscaliaID int64) ([]models.StatusCount, error)
	FailedReassignmentsByFiscalia(ctx context.Context, filter models.ReportFilter) ([]models.FiscaliaReassignmentReport, error)
}

type reportService struct {
	caseRepo repositories.CaseRepository
	logRepo  repositories.ReassignmentLogRepository
}

// NewReportService creates a new report service
func NewReportService(caseRepo repositories.CaseRepository, logRepo repositories.ReassignmentLogRepository) ReportService {
	return &reportService{caseRepo: caseRepo, logRepo: logRepo}
}

// CasesByStatus counts cases per lifecycle state. A zero fiscaliaID covers every unit.
func (s *reportService) CasesByStatus(ctx context.Context, fiscaliaID int64) ([]models.StatusCount, error) {
	if fiscaliaID < 0 {
		return nil, newError(KindValidation, "invalid fiscalia ID: %d", fiscaliaID)
	}
	counts, err := s.caseRepo.CountByStatus(ctx, fiscaliaID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases by status: %w", err)
	}
	return counts, nil
}

// FailedReassignmentsByFiscalia groups blocked attempts by the origin prosecutor's unit
func (s *reportService) FailedReassignmentsByFiscalia(ctx context.Context, filter models.ReportFilter) ([]models.FiscaliaReassignmentReport, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, newError(KindValidation, "date range end must not be before its start")
	}

	report, err := s.logRepo.ReportByFiscalia(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build failed reassignment report: %w", err)
	}
	return report, nil
}
