package repositories

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalia/case-tracker/database"
	"github.com/fiscalia/case-tracker/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "cases_test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(context.Background(), dbPath, logger)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// seedDirectory creates two fiscalias with one prosecutor each and returns the prosecutors
func seedDirectory(t *testing.T, repos *Repositories) (*models.Fiscal, *models.Fiscal) {
	t.Helper()
	ctx := context.Background()

	north := &models.Fiscalia{Name: "Fiscalía Norte", Active: true}
	south := &models.Fiscalia{Name: "Fiscalía Sur", Active: true}
	require.NoError(t, repos.Fiscalias.Create(ctx, north))
	require.NoError(t, repos.Fiscalias.Create(ctx, south))

	ana := &models.Fiscal{Name: "Ana", Email: "ana@mp.gob", PasswordHash: "x", Active: true, FiscaliaID: north.ID}
	luis := &models.Fiscal{Name: "Luis", Email: "luis@mp.gob", PasswordHash: "x", Active: true, FiscaliaID: south.ID}
	require.NoError(t, repos.Fiscales.Create(ctx, ana))
	require.NoError(t, repos.Fiscales.Create(ctx, luis))

	return ana, luis
}

func TestCaseRepository(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(setupTestDB(t))
	ana, luis := seedDirectory(t, repos)
	repo := repos.Cases

	// Test Create
	c := &models.Case{
		Title:    "Peculado municipal",
		Status:   models.StatusPending,
		Priority: models.PriorityHigh,
		FiscalID: ana.ID,
	}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)
	assert.Equal(t, int64(1), c.Version)
	assert.False(t, c.CreatedAt.IsZero())

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Title, retrieved.Title)
	assert.Equal(t, models.StatusPending, retrieved.Status)
	assert.Equal(t, ana.ID, retrieved.FiscalID)

	other := &models.Case{Title: "Robo agravado", Status: models.StatusInProgress, Priority: models.PriorityLow, FiscalID: luis.ID}
	require.NoError(t, repo.Create(ctx, other))

	// Test List filters
	all, err := repo.List(ctx, models.CaseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byFiscalia, err := repo.List(ctx, models.CaseFilter{FiscaliaID: ana.FiscaliaID})
	require.NoError(t, err)
	require.Len(t, byFiscalia, 1)
	assert.Equal(t, c.ID, byFiscalia[0].ID)

	byStatus, err := repo.List(ctx, models.CaseFilter{Status: models.StatusInProgress, Priority: models.PriorityLow})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, other.ID, byStatus[0].ID)

	// Test Update advances the version
	retrieved.Title = "Peculado municipal agravado"
	retrieved.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, retrieved))
	assert.Equal(t, int64(2), retrieved.Version)

	updated, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peculado municipal agravado", updated.Title)
	assert.Equal(t, int64(2), updated.Version)

	// Test stale update is rejected
	c.Title = "stale write"
	err = repo.Update(ctx, c)
	assert.True(t, errors.Is(err, ErrStaleCase), "expected ErrStaleCase, got %v", err)

	// Test CountByFiscal and CountByStatus
	count, err := repo.CountByFiscal(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	counts, err := repo.CountByStatus(ctx, 0)
	require.NoError(t, err)
	require.Len(t, counts, 4)
	assert.Equal(t, models.StatusCount{Status: models.StatusPending, Count: 1}, counts[0])
	assert.Equal(t, models.StatusCount{Status: models.StatusInProgress, Count: 1}, counts[1])
	assert.Equal(t, 0, counts[3].Count)

	southCounts, err := repo.CountByStatus(ctx, luis.FiscaliaID)
	require.NoError(t, err)
	assert.Equal(t, 0, southCounts[0].Count)
	assert.Equal(t, 1, southCounts[1].Count)

	// Test Delete
	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = repo.Delete(ctx, c.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Update on a missing case reports not found rather than stale
	err = repo.Update(ctx, c)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFiscalRepository(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(setupTestDB(t))
	ana, luis := seedDirectory(t, repos)

	byEmail, err := repos.Fiscales.GetByEmail(ctx, "ana@mp.gob")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, byEmail.ID)
	assert.Equal(t, models.RoleFiscal, byEmail.Role)

	_, err = repos.Fiscales.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, ErrNotFound))

	luis.Active = false
	require.NoError(t, repos.Fiscales.Update(ctx, luis))

	active := true
	activeOnly, err := repos.Fiscales.List(ctx, models.FiscalFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, ana.ID, activeOnly[0].ID)

	inNorth, err := repos.Fiscales.List(ctx, models.FiscalFilter{FiscaliaID: ana.FiscaliaID})
	require.NoError(t, err)
	assert.Len(t, inNorth, 1)

	count, err := repos.Fiscales.CountByFiscalia(ctx, ana.FiscaliaID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Duplicate email is rejected by the unique index
	dup := &models.Fiscal{Name: "Ana bis", Email: "ana@mp.gob", PasswordHash: "x", FiscaliaID: ana.FiscaliaID}
	assert.Error(t, repos.Fiscales.Create(ctx, dup))

	require.NoError(t, repos.Fiscales.Delete(ctx, luis.ID))
	assert.True(t, errors.Is(repos.Fiscales.Delete(ctx, luis.ID), ErrNotFound))
}

func TestFiscaliaRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFiscaliaRepository(setupTestDB(t))

	f := &models.Fiscalia{Name: "Fiscalía Central", Address: "Av. Reforma 1", Phone: "555-0101", Active: true}
	require.NoError(t, repo.Create(ctx, f))
	assert.NotZero(t, f.ID)

	f.Active = false
	require.NoError(t, repo.Update(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, "Av. Reforma 1", got.Address)

	active := true
	list, err := repo.List(ctx, &active)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, f.ID))
	_, err = repo.GetByID(ctx, f.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAuditRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	first := &models.AuditEntry{CaseID: 7, FiscalID: 1, Action: models.ActionCreated, Description: "Case created"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	second := &models.AuditEntry{CaseID: 7, FiscalID: 2, Action: models.ActionUpdated, Timestamp: first.Timestamp.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, second))

	entries, err := repo.List(ctx, models.AuditFilter{CaseID: 7})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "newest entry first")

	byFiscal, err := repo.List(ctx, models.AuditFilter{FiscalID: 1})
	require.NoError(t, err)
	assert.Len(t, byFiscal, 1)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ActionCreated, got.Action)

	// Entries are immutable at the storage level
	_, err = db.ExecContext(ctx, `UPDATE audit_entries SET description = 'tampered' WHERE id = ?`, first.ID)
	assert.Error(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM audit_entries WHERE id = ?`, first.ID)
	assert.Error(t, err)
}

func TestReassignmentLogRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ana, luis := seedDirectory(t, repos)
	repo := repos.ReassignmentLogs

	jan := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)

	entries := []*models.FailedReassignmentLog{
		{CaseID: 1, OriginFiscalID: ana.ID, DestinationFiscalID: luis.ID, BlockReason: "unit mismatch", AttemptedAt: jan},
		{CaseID: 1, OriginFiscalID: ana.ID, DestinationFiscalID: luis.ID, BlockReason: "unit mismatch", AttemptedAt: feb},
		{CaseID: 2, OriginFiscalID: luis.ID, DestinationFiscalID: ana.ID, BlockReason: "status Closed", AttemptedAt: feb},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
		assert.NotZero(t, e.ID)
	}

	all, err := repo.List(ctx, models.ReassignmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	sinceFeb, err := repo.List(ctx, models.ReassignmentFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, sinceFeb, 2)

	byOrigin, err := repo.List(ctx, models.ReassignmentFilter{OriginFiscalID: ana.ID, CaseID: 1})
	require.NoError(t, err)
	assert.Len(t, byOrigin, 2)

	got, err := repo.GetByID(ctx, entries[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "status Closed", got.BlockReason)
	assert.True(t, feb.Equal(got.AttemptedAt))

	report, err := repo.ReportByFiscalia(ctx, models.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, ana.FiscaliaID, report[0].FiscaliaID)
	assert.Equal(t, 2, report[0].FailedAttempts)
	assert.Equal(t, 1, report[0].CasesAffected)
	require.NotNil(t, report[0].LastAttemptAt)
	assert.True(t, feb.Equal(*report[0].LastAttemptAt))

	southSinceFeb, err := repo.ReportByFiscalia(ctx, models.ReportFilter{FiscaliaID: luis.FiscaliaID, From: &from})
	require.NoError(t, err)
	require.Len(t, southSinceFeb, 1)
	assert.Equal(t, 1, southSinceFeb[0].FailedAttempts)

	_, err = db.ExecContext(ctx, `DELETE FROM failed_reassignment_logs`)
	assert.Error(t, err)
}
