package controllers

import (
	"log/slog"
	"net/http"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/services"
)

// LogController handles audit trail and failed reassignment log requests
type LogController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services, logger *slog.Logger) *LogController {
	return &LogController{
		services: services,
		logger:   logger,
	}
}

// ListAuditEntries handles GET /api/audit-entries
func (c *LogController) ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	caseID, err := queryInt64(r, "caseId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	fiscalID, err := queryInt64(r, "fiscalId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	entries, err := c.services.Logs.ListAuditEntries(r.Context(), models.AuditFilter{CaseID: caseID, FiscalID: fiscalID})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, entries)
}

// GetAuditEntry handles GET /api/audit-entries/{id}
func (c *LogController) GetAuditEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	entry, err := c.services.Logs.GetAuditEntry(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "", entry)
}

// CreateAuditEntry handles POST /api/audit-entries
func (c *LogController) CreateAuditEntry(w http.ResponseWriter, r *http.Request) {
	var form models.AuditEntryForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	entry, err := c.services.Logs.CreateAuditEntry(r.Context(), &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusCreated, "Audit entry created successfully", entry)
}

// ListFailedReassignments handles GET /api/reassignment-logs
func (c *LogController) ListFailedReassignments(w http.ResponseWriter, r *http.Request) {
	var filter models.ReassignmentFilter
	var err error

	if filter.CaseID, err = queryInt64(r, "caseId"); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if filter.OriginFiscalID, err = queryInt64(r, "originProsecutorId"); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if filter.DestinationFiscalID, err = queryInt64(r, "destinationProsecutorId"); err != nil {
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

	entries, err := c.services.Logs.ListFailedReassignments(r.Context(), filter)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, entries)
}

// GetFailedReassignment handles GET /api/reassignment-logs/{id}
func (c *LogController) GetFailedReassignment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	entry, err := c.services.Logs.GetFailedReassignment(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "", entry)
}

// CreateFailedReassignment handles POST /api/reassignment-logs
func (c *LogController) CreateFailedReassignment(w http.ResponseWriter, r *http.Request) {
	var form models.FailedReassignmentForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	entry, err := c.services.Logs.CreateFailedReassignment(r.Context(), &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusCreated, "Failed reassignment recorded successfully", entry)
}
