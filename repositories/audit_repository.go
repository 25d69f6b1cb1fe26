package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fiscalia/case-tracker/models"
)

// AuditRepository handles case audit trail persistence. Entries are append-only.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
	GetByID(ctx context.Context, id int64) (*models.AuditEntry, error)
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

var auditColumns = []string{"id", "case_id", "fiscal_id", "action", "description", "timestamp"}

func scanAuditEntry(row rowScanner) (*models.AuditEntry, error) {
	var e models.AuditEntry
	if err := row.Scan(&e.ID, &e.CaseID, &e.FiscalID, &e.Action, &e.Description, &e.Timestamp); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new audit entry, stamping the current time when none is set
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Timestamp = entry.Timestamp.UTC()

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_entries (case_id, fiscal_id, action, description, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`,
		entry.CaseID,
		entry.FiscalID,
		entry.Action,
		entry.Description,
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	return nil
}

// GetByID retrieves an audit entry by ID
func (r *sqliteAuditRepository) GetByID(ctx context.Context, id int64) (*models.AuditEntry, error) {
	query, args, err := sq.Select(auditColumns...).From("audit_entries").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build audit entry query: %w", err)
	}

	entry, err := scanAuditEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("audit entry with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entry: %w", err)
	}

	return entry, nil
}

// List retrieves audit entries, newest first
func (r *sqliteAuditRepository) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error) {
	builder := sq.Select(auditColumns...).From("audit_entries").OrderBy("timestamp DESC", "id DESC")

	if filter.CaseID > 0 {
		builder = builder.Where(sq.Eq{"case_id": filter.CaseID})
	}
	if filter.FiscalID > 0 {
		builder = builder.Where(sq.Eq{"fiscal_id": filter.FiscalID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build audit list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}
