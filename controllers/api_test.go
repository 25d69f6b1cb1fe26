package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fiscalia/case-tracker/database"
	"github.com/fiscalia/case-tracker/metrics"
	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
	"github.com/fiscalia/case-tracker/services"
)

const testPassword = "s3cret-password"

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
}

// APITestSuite drives the HTTP API end to end against a temporary SQLite database
type APITestSuite struct {
	suite.Suite
	handler http.Handler
	srvs    *services.Services
	token   string

	northFiscalia *models.Fiscalia
	ana           *models.Fiscal // north
	marta         *models.Fiscal // north
	luis          *models.Fiscal // south
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.InitializeDatabase(ctx, filepath.Join(s.T().TempDir(), "api_test.db"), logger)
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	registry := prometheus.NewRegistry()
	tokens := services.NewTokenIssuer("test-secret-that-is-at-least-32-characters", "case-tracker", time.Hour)
	s.srvs = services.NewServices(repositories.NewRepositories(db), tokens, metrics.New(registry), logger)

	ctrl := NewControllers(s.srvs, nil, NewHealthController(db), false, logger)
	s.handler = ctrl.Routes(RouterOptions{
		Tokens:         tokens,
		Gatherer:       registry,
		Logger:         logger,
		RequestTimeout: 10 * time.Second,
	})

	north, err := s.srvs.Fiscalias.CreateFiscalia(ctx, &models.FiscaliaForm{Name: "Fiscalía Norte"})
	s.Require().NoError(err)
	south, err := s.srvs.Fiscalias.CreateFiscalia(ctx, &models.FiscaliaForm{Name: "Fiscalía Sur"})
	s.Require().NoError(err)
	s.northFiscalia = north

	s.ana = s.createFiscal("Ana", "ana@mp.gob", north.ID)
	s.marta = s.createFiscal("Marta", "marta@mp.gob", north.ID)
	s.luis = s.createFiscal("Luis", "luis@mp.gob", south.ID)

	result, err := s.srvs.Auth.Login(ctx, "ana@mp.gob", testPassword)
	s.Require().NoError(err)
	s.token = result.Token
}

func (s *APITestSuite) createFiscal(name, email string, fiscaliaID int64) *models.Fiscal {
	f, err := s.srvs.Fiscales.CreateFiscal(context.Background(), &models.FiscalForm{
		Name:       name,
		Email:      email,
		Password:   testPassword,
		FiscaliaID: fiscaliaID,
	})
	s.Require().NoError(err)
	return f
}

func (s *APITestSuite) request(method, path string, body any, token string) (int, apiResponse) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var resp apiResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	}
	return rec.Code, resp
}

func (s *APITestSuite) do(method, path string, body any) (int, apiResponse) {
	return s.request(method, path, body, s.token)
}

func (s *APITestSuite) createCase(fiscalID int64) models.Case {
	status, resp := s.do(http.MethodPost, "/api/cases", map[string]any{
		"title":    "Peculado en municipalidad",
		"priority": "High",
		"fiscalId": fiscalID,
	})
	s.Require().Equal(http.StatusCreated, status, resp.Message)

	var c models.Case
	s.Require().NoError(json.Unmarshal(resp.Data, &c))
	return c
}

func (s *APITestSuite) getCase(id int64) models.Case {
	status, resp := s.do(http.MethodGet, fmt.Sprintf("/api/cases/%d", id), nil)
	s.Require().Equal(http.StatusOK, status)

	var c models.Case
	s.Require().NoError(json.Unmarshal(resp.Data, &c))
	return c
}

func (s *APITestSuite) auditTrail(caseID int64) []models.AuditEntry {
	status, resp := s.do(http.MethodGet, fmt.Sprintf("/api/audit-entries?caseId=%d", caseID), nil)
	s.Require().Equal(http.StatusOK, status)

	var entries []models.AuditEntry
	s.Require().NoError(json.Unmarshal(resp.Data, &entries))
	return entries
}

func (s *APITestSuite) failedLogs(caseID int64) []models.FailedReassignmentLog {
	status, resp := s.do(http.MethodGet, fmt.Sprintf("/api/reassignment-logs?caseId=%d", caseID), nil)
	s.Require().Equal(http.StatusOK, status)

	var logs []models.FailedReassignmentLog
	s.Require().NoError(json.Unmarshal(resp.Data, &logs))
	return logs
}

func (s *APITestSuite) TestProtectedRoutesRequireToken() {
	status, resp := s.request(http.MethodGet, "/api/cases", nil, "")
	assert.Equal(s.T(), http.StatusUnauthorized, status)
	assert.False(s.T(), resp.Success)

	status, _ = s.request(http.MethodGet, "/api/cases", nil, "not-a-jwt")
	assert.Equal(s.T(), http.StatusUnauthorized, status)
}

func (s *APITestSuite) TestLoginAndVerify() {
	status, resp := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "marta@mp.gob",
		"password": testPassword,
	}, "")
	require.Equal(s.T(), http.StatusOK, status)

	var login services.LoginResult
	require.NoError(s.T(), json.Unmarshal(resp.Data, &login))
	require.NotEmpty(s.T(), login.Token)

	status, resp = s.request(http.MethodGet, "/api/auth/verify", nil, login.Token)
	require.Equal(s.T(), http.StatusOK, status)

	var me models.Fiscal
	require.NoError(s.T(), json.Unmarshal(resp.Data, &me))
	assert.Equal(s.T(), s.marta.ID, me.ID)
	assert.NotContains(s.T(), string(resp.Data), "password")

	status, resp = s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "marta@mp.gob",
		"password": "wrong-password",
	}, "")
	assert.Equal(s.T(), http.StatusUnauthorized, status)
	assert.Equal(s.T(), "unauthorized", resp.Error)
}

func (s *APITestSuite) TestSSONotConfigured() {
	status, _ := s.request(http.MethodGet, "/api/auth/sso/login", nil, "")
	assert.Equal(s.T(), http.StatusNotFound, status)
}

func (s *APITestSuite) TestCreateCaseRecordsCreated() {
	c := s.createCase(s.ana.ID)

	assert.Equal(s.T(), models.StatusPending, c.Status)
	assert.Equal(s.T(), models.PriorityHigh, c.Priority)

	trail := s.auditTrail(c.ID)
	require.Len(s.T(), trail, 1)
	assert.Equal(s.T(), models.ActionCreated, trail[0].Action)
	assert.Equal(s.T(), s.ana.ID, trail[0].FiscalID)
}

func (s *APITestSuite) TestCreateCaseRejectsNonPending() {
	status, resp := s.do(http.MethodPost, "/api/cases", map[string]any{
		"title":    "Peculado",
		"status":   "Closed",
		"fiscalId": s.ana.ID,
	})

	assert.Equal(s.T(), http.StatusBadRequest, status)
	assert.Equal(s.T(), "validation_error", resp.Error)
}

func (s *APITestSuite) TestStatusLifecycle() {
	c := s.createCase(s.ana.ID)

	status, resp := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"status": "Closed"})
	assert.Equal(s.T(), http.StatusUnprocessableEntity, status)
	assert.Equal(s.T(), "invalid_transition", resp.Error)
	assert.Equal(s.T(), models.StatusPending, s.getCase(c.ID).Status)
	assert.Len(s.T(), s.auditTrail(c.ID), 1)

	status, resp = s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"status": "InProgress"})
	require.Equal(s.T(), http.StatusOK, status, resp.Message)
	assert.True(s.T(), resp.Success)

	status, _ = s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"status": "InProgress"})
	require.Equal(s.T(), http.StatusOK, status)

	trail := s.auditTrail(c.ID)
	require.Len(s.T(), trail, 3)
	// newest first
	assert.Equal(s.T(), models.ActionUpdated, trail[0].Action)
	assert.Equal(s.T(), models.ActionStatusChanged, trail[1].Action)
	assert.Equal(s.T(), models.ActionCreated, trail[2].Action)
}

func (s *APITestSuite) TestTitleOnlyUpdate() {
	c := s.createCase(s.ana.ID)

	status, resp := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"title": "Colusión"})
	require.Equal(s.T(), http.StatusOK, status)
	assert.Equal(s.T(), "Case updated successfully", resp.Message)

	updated := s.getCase(c.ID)
	assert.Equal(s.T(), "Colusión", updated.Title)
	assert.Equal(s.T(), c.Version+1, updated.Version)

	trail := s.auditTrail(c.ID)
	require.Len(s.T(), trail, 2)
	assert.Equal(s.T(), models.ActionUpdated, trail[0].Action)
}

func (s *APITestSuite) TestReassignNonPendingIsBlocked() {
	c := s.createCase(s.ana.ID)
	status, _ := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"status": "InProgress"})
	require.Equal(s.T(), http.StatusOK, status)

	status, resp := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"fiscalId": s.marta.ID})

	assert.Equal(s.T(), http.StatusConflict, status)
	assert.Equal(s.T(), "reassignment_blocked", resp.Error)
	assert.Contains(s.T(), resp.Message, "InProgress")

	after := s.getCase(c.ID)
	assert.Equal(s.T(), s.ana.ID, after.FiscalID)
	assert.Equal(s.T(), models.StatusInProgress, after.Status)
	assert.Len(s.T(), s.auditTrail(c.ID), 2)

	logs := s.failedLogs(c.ID)
	require.Len(s.T(), logs, 1)
	assert.Equal(s.T(), s.ana.ID, logs[0].OriginFiscalID)
	assert.Equal(s.T(), s.marta.ID, logs[0].DestinationFiscalID)
}

func (s *APITestSuite) TestCrossFiscaliaReassignmentIsBlockedAndReported() {
	c := s.createCase(s.ana.ID)

	status, resp := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"fiscalId": s.luis.ID})
	assert.Equal(s.T(), http.StatusConflict, status)
	assert.Equal(s.T(), "reassignment_blocked", resp.Error)
	assert.Equal(s.T(), s.ana.ID, s.getCase(c.ID).FiscalID)

	logs := s.failedLogs(c.ID)
	require.Len(s.T(), logs, 1)
	assert.Equal(s.T(), s.ana.ID, logs[0].OriginFiscalID)
	assert.Equal(s.T(), s.luis.ID, logs[0].DestinationFiscalID)
	assert.Contains(s.T(), logs[0].BlockReason, "different fiscalia")

	status, resp = s.do(http.MethodGet, fmt.Sprintf("/api/reassignment-logs/report/fiscalia?fiscaliaId=%d", s.northFiscalia.ID), nil)
	require.Equal(s.T(), http.StatusOK, status)

	var report []models.FiscaliaReassignmentReport
	require.NoError(s.T(), json.Unmarshal(resp.Data, &report))
	require.Len(s.T(), report, 1)
	assert.Equal(s.T(), 1, report[0].FailedAttempts)
	assert.Equal(s.T(), 1, report[0].CasesAffected)
}

func (s *APITestSuite) TestClosedCaseToInactiveProsecutorIsBlocked() {
	c := s.createCase(s.ana.ID)
	for _, next := range []string{"InProgress", "Closed"} {
		status, _ := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"status": next})
		require.Equal(s.T(), http.StatusOK, status)
	}

	inactive := false
	_, err := s.srvs.Fiscales.UpdateFiscal(context.Background(), s.marta.ID, &models.FiscalForm{
		Name:       s.marta.Name,
		Email:      s.marta.Email,
		Active:     &inactive,
		FiscaliaID: s.marta.FiscaliaID,
	})
	require.NoError(s.T(), err)

	status, resp := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"fiscalId": s.marta.ID})

	assert.Equal(s.T(), http.StatusConflict, status)
	assert.Equal(s.T(), "reassignment_blocked", resp.Error)
	assert.Len(s.T(), s.failedLogs(c.ID), 1)
}

func (s *APITestSuite) TestSameFiscaliaReassignment() {
	c := s.createCase(s.ana.ID)

	status, _ := s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"fiscalId": s.marta.ID})
	require.Equal(s.T(), http.StatusOK, status)

	assert.Equal(s.T(), s.marta.ID, s.getCase(c.ID).FiscalID)
	assert.Empty(s.T(), s.failedLogs(c.ID))

	trail := s.auditTrail(c.ID)
	require.Len(s.T(), trail, 2)
	assert.Equal(s.T(), models.ActionUpdated, trail[0].Action)
	assert.Equal(s.T(), s.marta.ID, trail[0].FiscalID)
}

func (s *APITestSuite) TestUpdateUnknownCase() {
	status, resp := s.do(http.MethodPut, "/api/cases/999", map[string]any{"title": "x"})

	assert.Equal(s.T(), http.StatusNotFound, status)
	assert.Equal(s.T(), "not_found", resp.Error)
}

func (s *APITestSuite) TestInvalidBodyAndID() {
	status, _ := s.do(http.MethodPut, "/api/cases/abc", map[string]any{"title": "x"})
	assert.Equal(s.T(), http.StatusBadRequest, status)

	status, resp := s.do(http.MethodPut, "/api/cases/1", nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)
	assert.Equal(s.T(), "request body is required", resp.Message)

	status, _ = s.do(http.MethodGet, "/api/reassignment-logs?from=yesterday", nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)
}

func (s *APITestSuite) TestDeleteCaseKeepsHistory() {
	c := s.createCase(s.ana.ID)
	s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"fiscalId": s.luis.ID})

	status, _ := s.do(http.MethodDelete, fmt.Sprintf("/api/cases/%d", c.ID), nil)
	require.Equal(s.T(), http.StatusOK, status)

	status, _ = s.do(http.MethodGet, fmt.Sprintf("/api/cases/%d", c.ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
	assert.Len(s.T(), s.auditTrail(c.ID), 1)
	assert.Len(s.T(), s.failedLogs(c.ID), 1)
}

func (s *APITestSuite) TestDirectoryDeleteRules() {
	s.createCase(s.ana.ID)

	status, resp := s.do(http.MethodDelete, fmt.Sprintf("/api/fiscales/%d", s.ana.ID), nil)
	assert.Equal(s.T(), http.StatusConflict, status)
	assert.Equal(s.T(), "conflict", resp.Error)

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/fiscalias/%d", s.northFiscalia.ID), nil)
	assert.Equal(s.T(), http.StatusConflict, status)

	status, resp = s.do(http.MethodGet, fmt.Sprintf("/api/fiscales?fiscaliaId=%d", s.northFiscalia.ID), nil)
	require.Equal(s.T(), http.StatusOK, status)
	require.NotNil(s.T(), resp.Count)
	assert.Equal(s.T(), 2, *resp.Count)
}

func (s *APITestSuite) TestCasesByStatusReport() {
	s.createCase(s.ana.ID)
	c := s.createCase(s.ana.ID)
	s.do(http.MethodPut, fmt.Sprintf("/api/cases/%d", c.ID), map[string]any{"status": "InProgress"})

	status, resp := s.do(http.MethodGet, "/api/reports/cases-by-status", nil)
	require.Equal(s.T(), http.StatusOK, status)

	var counts []models.StatusCount
	require.NoError(s.T(), json.Unmarshal(resp.Data, &counts))

	byStatus := map[models.CaseStatus]int{}
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(s.T(), 1, byStatus[models.StatusPending])
	assert.Equal(s.T(), 1, byStatus[models.StatusInProgress])
	assert.Equal(s.T(), 0, byStatus[models.StatusArchived])
}

func (s *APITestSuite) TestManualLogEntries() {
	c := s.createCase(s.ana.ID)

	status, resp := s.do(http.MethodPost, "/api/reassignment-logs", map[string]any{
		"caseId":                  c.ID,
		"originProsecutorId":      s.ana.ID,
		"destinationProsecutorId": s.luis.ID,
		"blockReason":             "registered manually",
	})
	require.Equal(s.T(), http.StatusCreated, status, resp.Message)

	var entry models.FailedReassignmentLog
	require.NoError(s.T(), json.Unmarshal(resp.Data, &entry))
	assert.False(s.T(), entry.AttemptedAt.IsZero())

	status, _ = s.do(http.MethodGet, fmt.Sprintf("/api/reassignment-logs/%d", entry.ID), nil)
	assert.Equal(s.T(), http.StatusOK, status)

	status, resp = s.do(http.MethodPost, "/api/reassignment-logs", map[string]any{"caseId": c.ID})
	assert.Equal(s.T(), http.StatusBadRequest, status)
	assert.Equal(s.T(), "validation_error", resp.Error)

	status, resp = s.do(http.MethodPost, "/api/audit-entries", map[string]any{
		"caseId":      c.ID,
		"fiscalId":    s.ana.ID,
		"action":      "Updated",
		"description": "note added",
	})
	require.Equal(s.T(), http.StatusCreated, status, resp.Message)
	assert.Len(s.T(), s.auditTrail(c.ID), 2)
}

func (s *APITestSuite) TestHealthAndMetrics() {
	status, _ := s.request(http.MethodGet, "/health", nil, "")
	require.Equal(s.T(), http.StatusOK, status)

	s.createCase(s.ana.ID)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), `casetracker_case_mutations_total{action="Created"} 1`)
}

func TestHealthReportsSchemaVersion(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := database.InitializeDatabase(context.Background(), filepath.Join(t.TempDir(), "health.db"), logger)
	require.NoError(t, err)
	defer db.Close()

	rec := httptest.NewRecorder()
	NewHealthController(db).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(1), body["schemaVersion"])

	db.Close()
	rec = httptest.NewRecorder()
	NewHealthController(db).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
