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

// CaseRepository interface defines case database operations
type CaseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Case, error)
	List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	Create(ctx context.Context, c *models.Case) error
	Update(ctx context.Context, c *models.Case) error
	Delete(ctx context.Context, id int64) error
	CountByFiscal(ctx context.Context, fiscalID int64) (int, error)
	CountByStatus(ctx context.Context, fiscaliaID int64) ([]models.StatusCount, error)
}

// caseRepository implements CaseRepository interface
type caseRepository struct {
	db *sql.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *sql.DB) CaseRepository {
	return &caseRepository{db: db}
}

var caseColumns = []string{
	"c.id", "c.title", "c.description", "c.created_at", "c.updated_at",
	"c.status", "c.priority", "c.fiscal_id", "c.version",
}

func scanCase(row rowScanner) (*models.Case, error) {
	var c models.Case
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Status,
		&c.Priority,
		&c.FiscalID,
		&c.Version,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a case by ID
func (r *caseRepository) GetByID(ctx context.Context, id int64) (*models.Case, error) {
	query, args, err := sq.Select(caseColumns...).
		From("cases c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build case query: %w", err)
	}

	c, err := scanCase(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("case with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	return c, nil
}

// List retrieves cases matching the filter, most recently updated first
func (r *caseRepository) List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	builder := sq.Select(caseColumns...).
		From("cases c").
		OrderBy("c.updated_at DESC", "c.id DESC")

	if filter.FiscalID > 0 {
		builder = builder.Where(sq.Eq{"c.fiscal_id": filter.FiscalID})
	}
	if filter.FiscaliaID > 0 {
		builder = builder.
			Join("fiscales f ON f.id = c.fiscal_id").
			Where(sq.Eq{"f.fiscalia_id": filter.FiscaliaID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"c.status": filter.Status})
	}
	if filter.Priority != "" {
		builder = builder.Where(sq.Eq{"c.priority": filter.Priority})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build case list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	cases := []models.Case{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cases: %w", err)
	}

	return cases, nil
}

// Create inserts a new case. CreatedAt and UpdatedAt default to now.
func (r *caseRepository) Create(ctx context.Context, c *models.Case) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	c.Version = 1

	query, args, err := sq.Insert("cases").
		Columns("title", "description", "created_at", "updated_at", "status", "priority", "fiscal_id", "version").
		Values(c.Title, c.Description, c.CreatedAt, c.UpdatedAt, c.Status, c.Priority, c.FiscalID, c.Version).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build case insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	c.ID = id
	return nil
}

// Update writes every mutable field of c, provided the stored version still
// equals c.Version. On success c.Version is advanced.
func (r *caseRepository) Update(ctx context.Context, c *models.Case) error {
	query, args, err := sq.Update("cases").
		Set("title", c.Title).
		Set("description", c.Description).
		Set("updated_at", c.UpdatedAt).
		Set("status", c.Status).
		Set("priority", c.Priority).
		Set("fiscal_id", c.FiscalID).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": c.ID, "version": c.Version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build case update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update case: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
		return fmt.Errorf("case with ID %d at version %d: %w", c.ID, c.Version, ErrStaleCase)
	}

	c.Version++
	return nil
}

// Delete deletes a case by ID
func (r *caseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("case with ID %d: %w", id, ErrNotFound)
	}

	return nil
}

// CountByFiscal returns the number of cases assigned to a prosecutor
func (r *caseRepository) CountByFiscal(ctx context.Context, fiscalID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases WHERE fiscal_id = ?`, fiscalID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cases: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of cases per status, optionally limited to one fiscalia.
// Every status is present in the result, with zero counts included.
func (r *caseRepository) CountByStatus(ctx context.Context, fiscaliaID int64) ([]models.StatusCount, error) {
	builder := sq.Select("c.status", "COUNT(*)").
		From("cases c").
		GroupBy("c.status")

	if fiscaliaID > 0 {
		builder = builder.
			Join("fiscales f ON f.id = c.fiscal_id").
			Where(sq.Eq{"f.fiscalia_id": fiscaliaID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build status count query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.CaseStatus]int)
	for rows.Next() {
		var status models.CaseStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}

	result := make([]models.StatusCount, 0, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		result = append(result, models.StatusCount{Status: status, Count: counts[status]})
	}

	return result, nil
}
