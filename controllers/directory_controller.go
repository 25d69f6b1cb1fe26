package controllers

import (
	"log/slog"
	"net/http"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/services"
)

// DirectoryController handles fiscalia and prosecutor requests
type DirectoryController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewDirectoryController creates a new directory controller
func NewDirectoryController(services *services.Services, logger *slog.Logger) *DirectoryController {
	return &DirectoryController{
		services: services,
		logger:   logger,
	}
}

// ListFiscalias handles GET /api/fiscalias
func (c *DirectoryController) ListFiscalias(w http.ResponseWriter, r *http.Request) {
	active, err := queryBool(r, "active")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscalias, err := c.services.Fiscalias.ListFiscalias(r.Context(), active)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, fiscalias)
}

// GetFiscalia handles GET /api/fiscalias/{id}
func (c *DirectoryController) GetFiscalia(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscalia, err := c.services.Fiscalias.GetFiscalia(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "", fiscalia)
}

// CreateFiscalia handles POST /api/fiscalias
func (c *DirectoryController) CreateFiscalia(w http.ResponseWriter, r *http.Request) {
	var form models.FiscaliaForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscalia, err := c.services.Fiscalias.CreateFiscalia(r.Context(), &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusCreated, "Fiscalia created successfully", fiscalia)
}

// UpdateFiscalia handles PUT /api/fiscalias/{id}
func (c *DirectoryController) UpdateFiscalia(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var form models.FiscaliaForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscalia, err := c.services.Fiscalias.UpdateFiscalia(r.Context(), id, &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Fiscalia updated successfully", fiscalia)
}

// DeleteFiscalia handles DELETE /api/fiscalias/{id}
func (c *DirectoryController) DeleteFiscalia(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := c.services.Fiscalias.DeleteFiscalia(r.Context(), id); err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Fiscalia deleted successfully", nil)
}

// ListFiscales handles GET /api/fiscales
func (c *DirectoryController) ListFiscales(w http.ResponseWriter, r *http.Request) {
	fiscaliaID, err := queryInt64(r, "fiscaliaId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	active, err := queryBool(r, "active")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscales, err := c.services.Fiscales.ListFiscales(r.Context(), models.FiscalFilter{FiscaliaID: fiscaliaID, Active: active})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeList(w, fiscales)
}

// GetFiscal handles GET /api/fiscales/{id}
func (c *DirectoryController) GetFiscal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscal, err := c.services.Fiscales.GetFiscal(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "", fiscal)
}

// CreateFiscal handles POST /api/fiscales
func (c *DirectoryController) CreateFiscal(w http.ResponseWriter, r *http.Request) {
	var form models.FiscalForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscal, err := c.services.Fiscales.CreateFiscal(r.Context(), &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusCreated, "Prosecutor created successfully", fiscal)
}

// UpdateFiscal handles PUT /api/fiscales/{id}
func (c *DirectoryController) UpdateFiscal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var form models.FiscalForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	fiscal, err := c.services.Fiscales.UpdateFiscal(r.Context(), id, &form)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Prosecutor updated successfully", fiscal)
}

// DeleteFiscal handles DELETE /api/fiscales/{id}
func (c *DirectoryController) DeleteFiscal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := c.services.Fiscales.DeleteFiscal(r.Context(), id); err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Prosecutor deleted successfully", nil)
}
