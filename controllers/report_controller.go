package controllers

import (
	"log/slog"
	"net/http"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/services"
)

// ReportController handles aggregate report requests
type ReportController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewReportController creates a new report controller
func NewReportController(services *services.Services, logger *slog.Logger) *ReportController {
	return &ReportController{
		services: services,
		logger:   logger,
	}
}

// CasesByStatus handles GET /api/reports/cases-by-status
func (c *ReportController) CasesByStatus(w http.ResponseWriter, r *http.Request) {
	fiscaliaID, err := queryInt64(r, "fiscaliaId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	counts, err := c.services.Reports.CasesByStatus(r.Context(), fiscaliaID)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, counts)
}

// FailedReassignmentsByFiscalia handles GET /api/reassignment-logs/report/fiscalia
func (c *ReportController) FailedReassignmentsByFiscalia(w http.ResponseWriter, r *http.Request) {
	var filter models.ReportFilter
	var err error

	if filter.FiscaliaID, err = queryInt64(r, "fiscaliaId"); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if filter.From, err = queryTime(r, "from", false); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if filter.To, err = queryTime(r, "to", true); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	report, err := c.services.Reports.FailedReassignmentsByFiscalia(r.Context(), filter)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, report)
}
