package repositories

//go:generate mockery

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Cases            CaseRepository
	Fiscales         FiscalRepository
	Fiscalias        FiscaliaRepository
	Audit            AuditRepository
	ReassignmentLogs ReassignmentLogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Cases:            NewCaseRepository(db),
		Fiscales:         NewFiscalRepository(db),
		Fiscalias:        NewFiscaliaRepository(db),
		Audit:            NewAuditRepository(db),
		ReassignmentLogs: NewReassignmentLogRepository(db),
	}
}
