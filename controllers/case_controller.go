package controllers

import (
	"log/slog"
	"net/http"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/services"
)

// CaseController handles case requests
type CaseController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewCaseController creates a new case controller
func NewCaseController(services *services.Services, logger *slog.Logger) *CaseController {
	return &CaseController{
		services: services,
		logger:   logger,
	}
}

// List handles GET /api/cases
func (c *CaseController) List(w http.ResponseWriter, r *http.Request) {
	fiscalID, err := queryInt64(r, "fiscalId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	fiscaliaID, err := queryInt64(r, "fiscaliaId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	query := r.URL.Query()
	cases, err := c.services.Cases.ListCases(r.Context(), models.CaseFilter{
		FiscalID:   fiscalID,
		FiscaliaID: fiscaliaID,
		Status:     models.CaseStatus(query.Get("status")),
		Priority:   models.Priority(query.Get("priority")),
	})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, cases)
}

// Get handles GET /api/cases/{id}
func (c *CaseController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	found, err := c.services.Cases.GetCase(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "", found)
}

// Create handles POST /api/cases
func (c *CaseController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.CaseForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	created, err := c.services.Cases.CreateCase(r.Context(), &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusCreated, "Case created successfully", created)
}

// Update handles PUT /api/cases/{id}. Every case change goes through the update orchestrator.
func (c *CaseController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var update models.CaseUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := c.services.Cases.UpdateCase(r.Context(), id, &update)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Case updated successfully", updated)
}

// Delete handles DELETE /api/cases/{id}
func (c *CaseController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := c.services.Cases.DeleteCase(r.Context(), id); err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Case deleted successfully", nil)
}
