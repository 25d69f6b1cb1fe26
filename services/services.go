package services

import (
	"log/slog"
	"time"

	"github.com/fiscalia/case-tracker/metrics"
	"github.com/fiscalia/case-tracker/repositories"
)

// timeNow is the clock shared by services; stored times are UTC
var timeNow = func() time.Time { return time.Now().UTC() }

// Services holds all service instances
type Services struct {
	Cases     CaseService
	Fiscalias FiscaliaService
	Fiscales  FiscalService
	Logs      LogService
	Reports   ReportService
	Auth      AuthService
	Tokens    *TokenIssuer
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, tokens *TokenIssuer, m *metrics.Metrics, logger *slog.Logger) *Services {
	auditRecorder := NewAuditRecorder(repos.Audit)
	failedRecorder := NewFailedReassignmentRecorder(repos.ReassignmentLogs)

	return &Services{
		Cases:     NewCaseService(repos.Cases, repos.Fiscales, auditRecorder, failedRecorder, m, logger),
		Fiscalias: NewFiscaliaService(repos.Fiscalias, repos.Fiscales, logger),
		Fiscales:  NewFiscalService(repos.Fiscales, repos.Fiscalias, repos.Cases, logger),
		Logs:      NewLogService(repos.Audit, repos.ReassignmentLogs),
		Reports:   NewReportService(repos.Cases, repos.ReassignmentLogs),
		Auth:      NewAuthService(repos.Fiscales, tokens, logger),
		Tokens:    tokens,
	}
}
