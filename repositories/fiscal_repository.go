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

// FiscalRepository is the prosecutor directory. Case reassignment resolves
// origin and destination prosecutors through GetByID.
type FiscalRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Fiscal, error)
	GetByEmail(ctx context.Context, email string) (*models.Fiscal, error)
	List(ctx context.Context, filter models.FiscalFilter) ([]models.Fiscal, error)
	Create(ctx context.Context, fiscal *models.Fiscal) error
	Update(ctx context.Context, fiscal *models.Fiscal) error
	Delete(ctx context.Context, id int64) error
	CountByFiscalia(ctx context.Context, fiscaliaID int64) (int, error)
}

// fiscalRepository implements FiscalRepository interface
type fiscalRepository struct {
	db *sql.DB
}

// NewFiscalRepository creates a new prosecutor repository
func NewFiscalRepository(db *sql.DB) FiscalRepository {
	return &fiscalRepository{db: db}
}

var fiscalColumns = []string{
	"id", "name", "email", "password_hash", "role", "active", "created_at", "fiscalia_id",
}

func scanFiscal(row rowScanner) (*models.Fiscal, error) {
	var f models.Fiscal
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Email,
		&f.PasswordHash,
		&f.Role,
		&f.Active,
		&f.CreatedAt,
		&f.FiscaliaID,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByID retrieves a prosecutor by ID
func (r *fiscalRepository) GetByID(ctx context.Context, id int64) (*models.Fiscal, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, fmt.Sprintf("prosecutor with ID %d", id))
}

// GetByEmail retrieves a prosecutor by login email
func (r *fiscalRepository) GetByEmail(ctx context.Context, email string) (*models.Fiscal, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, fmt.Sprintf("prosecutor with email %s", email))
}

func (r *fiscalRepository) getOne(ctx context.Context, where sq.Eq, what string) (*models.Fiscal, error) {
	query, args, err := sq.Select(fiscalColumns...).From("fiscales").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build prosecutor query: %w", err)
	}

	fiscal, err := scanFiscal(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prosecutor: %w", err)
	}

	return fiscal, nil
}

// List retrieves prosecutors ordered by name
func (r *fiscalRepository) List(ctx context.Context, filter models.FiscalFilter) ([]models.Fiscal, error) {
	builder := sq.Select(fiscalColumns...).From("fiscales").OrderBy("name ASC")

	if filter.FiscaliaID > 0 {
		builder = builder.Where(sq.Eq{"fiscalia_id": filter.FiscaliaID})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"active": *filter.Active})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build prosecutor list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query prosecutors: %w", err)
	}
	defer rows.Close()

	fiscales := []models.Fiscal{}
	for rows.Next() {
		fiscal, err := scanFiscal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prosecutor: %w", err)
		}
		fiscales = append(fiscales, *fiscal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prosecutors: %w", err)
	}

	return fiscales, nil
}

// Create creates a new prosecutor
func (r *fiscalRepository) Create(ctx context.Context, fiscal *models.Fiscal) error {
	if fiscal.CreatedAt.IsZero() {
		fiscal.CreatedAt = time.Now().UTC()
	}
	if fiscal.Role == "" {
		fiscal.Role = models.RoleFiscal
	}

	query, args, err := sq.Insert("fiscales").
		Columns("name", "email", "password_hash", "role", "active", "created_at", "fiscalia_id").
		Values(fiscal.Name, fiscal.Email, fiscal.PasswordHash, fiscal.Role, fiscal.Active, fiscal.CreatedAt, fiscal.FiscaliaID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build prosecutor insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create prosecutor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	fiscal.ID = id
	return nil
}

// Update updates an existing prosecutor
func (r *fiscalRepository) Update(ctx context.Context, fiscal *models.Fiscal) error {
	query, args, err := sq.Update("fiscales").
		Set("name", fiscal.Name).
		Set("email", fiscal.Email).
		Set("password_hash", fiscal.PasswordHash).
		Set("role", fiscal.Role).
		Set("active", fiscal.Active).
		Set("fiscalia_id", fiscal.FiscaliaID).
		Where(sq.Eq{"id": fiscal.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build prosecutor update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update prosecutor: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("prosecutor with ID %d", fiscal.ID))
}

// Delete deletes a prosecutor by ID
func (r *fiscalRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fiscales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prosecutor: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("prosecutor with ID %d", id))
}

// CountByFiscalia returns the number of prosecutors in an organizational unit
func (r *fiscalRepository) CountByFiscalia(ctx context.Context, fiscaliaID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fiscales WHERE fiscalia_id = ?`, fiscaliaID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count prosecutors: %w", err)
	}
	return count, nil
}

// expectOneRow turns a zero-row UPDATE/DELETE into ErrNotFound
func expectOneRow(result sql.Result, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	return nil
}
