package controllers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/fiscalia/case-tracker/database"
)

// HealthController reports database reachability and the applied schema version
type HealthController struct {
	db *sql.DB
}

// NewHealthController creates a new health controller
func NewHealthController(db *sql.DB) *HealthController {
	return &HealthController{db: db}
}

type healthResponse struct {
	Status        string    `json:"status"`
	Service       string    `json:"service"`
	SchemaVersion int64     `json:"schemaVersion,omitempty"`
	Error         string    `json:"error,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Check handles GET /health
func (h *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "healthy", Service: "case-tracker", Timestamp: time.Now().UTC()}

	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Error = "database unreachable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	version, err := database.CurrentVersion(ctx, h.db)
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = "schema version unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.SchemaVersion = version

	writeJSON(w, http.StatusOK, resp)
}
