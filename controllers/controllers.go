package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fiscalia/case-tracker/authenticator"
	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/services"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// Response is the envelope every endpoint returns
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Cases     *CaseController
	Directory *DirectoryController
	Logs      *LogController
	Reports   *ReportController
	Health    *HealthController
}

// NewControllers creates and initializes all controller instances.
// sso may be nil when single sign-on is not configured.
func NewControllers(srvs *services.Services, sso authenticator.Provider, health *HealthController, secureCookies bool, logger *slog.Logger) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(srvs, sso, secureCookies, logger),
		Cases:     NewCaseController(srvs, logger),
		Directory: NewDirectoryController(srvs, logger),
		Logs:      NewLogController(srvs, logger),
		Reports:   NewReportController(srvs, logger),
		Health:    health,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: items, Count: &count})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{Message: message, Error: string(services.KindValidation)})
}

// statusForKind maps service error kinds to HTTP status codes
var statusForKind = map[services.ErrorKind]int{
	services.KindValidation:          http.StatusBadRequest,
	services.KindNotFound:            http.StatusNotFound,
	services.KindInvalidTransition:   http.StatusUnprocessableEntity,
	services.KindReassignmentBlocked: http.StatusConflict,
	services.KindConflict:            http.StatusConflict,
	services.KindUnauthorized:        http.StatusUnauthorized,
}

// writeError renders a service error. Anything that is not a ServiceError is
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var se *services.ServiceError
	if errors.As(err, &se) {
		status, ok := statusForKind[se.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, Response{Message: se.Message, Error: string(se.Kind)})
		return
	}

	logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, Response{Message: "internal server error", Error: "internal"})
}

// decodeJSON reads a single JSON object from the request body
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// parseID reads a positive integer URL parameter
func parseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// queryInt64 reads an optional positive integer query parameter; missing means 0
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

// queryBool reads an optional boolean query parameter
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

// queryTime reads an optional RFC 3339 or YYYY-MM-DD query parameter.
// A bare date used as a range end covers the whole day.
func queryTime(r *http.Request, name string, rangeEnd bool) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := models.ParseTimestamp(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	if rangeEnd && len(raw) == len("2006-01-02") {
		t = models.EndOfDay(t)
	}
	return &t, nil
}
