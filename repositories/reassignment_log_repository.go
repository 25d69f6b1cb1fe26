package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/fiscalia/case-tracker/models"
)

// ReassignmentLogRepository handles failed reassignment log persistence. Entries are append-only.
type ReassignmentLogRepository interface {
	Create(ctx context.Context, entry *models.FailedReassignmentLog) error
	GetByID(ctx context.Context, id int64) (*models.FailedReassignmentLog, error)
	List(ctx context.Context, filter models.ReassignmentFilter) ([]models.FailedReassignmentLog, error)
	ReportByFiscalia(ctx context.Context, filter models.ReportFilter) ([]models.FiscaliaReassignmentReport, error)
}

type reassignmentLogRepository struct {
	db *sql.DB
}

// NewReassignmentLogRepository creates a new failed reassignment log repository
func NewReassignmentLogRepository(db *sql.DB) ReassignmentLogRepository {
	return &reassignmentLogRepository{db: db}
}

var reassignmentColumns = []string{
	"id", "case_id", "origin_fiscal_id", "destination_fiscal_id", "block_reason", "attempted_at",
}

func scanReassignmentLog(row rowScanner) (*models.FailedReassignmentLog, error) {
	var l models.FailedReassignmentLog
	err := row.Scan(
		&l.ID,
		&l.CaseID,
		&l.OriginFiscalID,
		&l.DestinationFiscalID,
		&l.BlockReason,
		&l.AttemptedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new failed reassignment entry
func (r *reassignmentLogRepository) Create(ctx context.Context, entry *models.FailedReassignmentLog) error {
	if entry.AttemptedAt.IsZero() {
		entry.AttemptedAt = time.Now()
	}
	entry.AttemptedAt = entry.AttemptedAt.UTC()

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO failed_reassignment_logs (case_id, origin_fiscal_id, destination_fiscal_id, block_reason, attempted_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		entry.CaseID,
		entry.OriginFiscalID,
		entry.DestinationFiscalID,
		entry.BlockReason,
		entry.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create failed reassignment log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	return nil
}

// GetByID retrieves a failed reassignment entry by ID
func (r *reassignmentLogRepository) GetByID(ctx context.Context, id int64) (*models.FailedReassignmentLog, error) {
	query, args, err := sq.Select(reassignmentColumns...).
		From("failed_reassignment_logs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reassignment log query: %w", err)
	}

	entry, err := scanReassignmentLog(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed reassignment log with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reassignment log: %w", err)
	}

	return entry, nil
}

// List retrieves failed reassignment entries, newest first
func (r *reassignmentLogRepository) List(ctx context.Context, filter models.ReassignmentFilter) ([]models.FailedReassignmentLog, error) {
	builder := sq.Select(reassignmentColumns...).
		From("failed_reassignment_logs").
		OrderBy("attempted_at DESC", "id DESC")

	if filter.CaseID > 0 {
		builder = builder.Where(sq.Eq{"case_id": filter.CaseID})
	}
	if filter.OriginFiscalID > 0 {
		builder = builder.Where(sq.Eq{"origin_fiscal_id": filter.OriginFiscalID})
	}
	if filter.DestinationFiscalID > 0 {
		builder = builder.Where(sq.Eq{"destination_fiscal_id": filter.DestinationFiscalID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"attempted_at": filter.From.UTC()})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"attempted_at": filter.To.UTC()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reassignment log list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reassignment logs: %w", err)
	}
	defer rows.Close()

	entries := []models.FailedReassignmentLog{}
	for rows.Next() {
		entry, err := scanReassignmentLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reassignment log: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reassignment logs: %w", err)
	}

	return entries, nil
}

// ReportByFiscalia aggregates failed attempts by the fiscalia of the origin prosecutor
func (r *reassignmentLogRepository) ReportByFiscalia(ctx context.Context, filter models.ReportFilter) ([]models.FiscaliaReassignmentReport, error) {
	builder := sq.Select(
		"fz.id",
		"fz.name",
		"COUNT(*)",
		"COUNT(DISTINCT l.case_id)",
		"MAX(l.attempted_at)",
	).
		From("failed_reassignment_logs l").
		Join("fiscales f ON f.id = l.origin_fiscal_id").
		Join("fiscalias fz ON fz.id = f.fiscalia_id").
		GroupBy("fz.id", "fz.name").
		OrderBy("COUNT(*) DESC", "fz.name ASC")

	if filter.FiscaliaID > 0 {
		builder = builder.Where(sq.Eq{"fz.id": filter.FiscaliaID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"l.attempted_at": filter.From.UTC()})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"l.attempted_at": filter.To.UTC()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reassignment report query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reassignment report: %w", err)
	}
	defer rows.Close()

	report := []models.FiscaliaReassignmentReport{}
	for rows.Next() {
		var row models.FiscaliaReassignmentReport
		var lastAttempt sql.NullString
		if err := rows.Scan(&row.FiscaliaID, &row.FiscaliaName, &row.FailedAttempts, &row.CasesAffected, &lastAttempt); err != nil {
			return nil, fmt.Errorf("failed to scan reassignment report row: %w", err)
		}
		if lastAttempt.Valid {
			if t, ok := parseStoredTime(lastAttempt.String); ok {
				row.LastAttemptAt = &t
			}
		}
		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reassignment report: %w", err)
	}

	return report, nil
}

// parseStoredTime parses a timestamp returned by an aggregate, which SQLite
// hands back as text rather than through the DATETIME column conversion.
func parseStoredTime(value string) (time.Time, bool) {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
