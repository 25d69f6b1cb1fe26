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

// FiscaliaRepository interface defines organizational unit database operations
type FiscaliaRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Fiscalia, error)
	List(ctx context.Context, active *bool) ([]models.Fiscalia, error)
	Create(ctx context.Context, fiscalia *models.Fiscalia) error
	Update(ctx context.Context, fiscalia *models.Fiscalia) error
	Delete(ctx context.Context, id int64) error
}

type fiscaliaRepository struct {
	db *sql.DB
}

// NewFiscaliaRepository creates a new fiscalia repository
func NewFiscaliaRepository(db *sql.DB) FiscaliaRepository {
	return &fiscaliaRepository{db: db}
}

var fiscaliaColumns = []string{"id", "name", "address", "phone", "active", "created_at"}

func scanFiscalia(row rowScanner) (*models.Fiscalia, error) {
	var f models.Fiscalia
	if err := row.Scan(&f.ID, &f.Name, &f.Address, &f.Phone, &f.Active, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByID retrieves a fiscalia by ID
func (r *fiscaliaRepository) GetByID(ctx context.Context, id int64) (*models.Fiscalia, error) {
	query, args, err := sq.Select(fiscaliaColumns...).From("fiscalias").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build fiscalia query: %w", err)
	}

	fiscalia, err := scanFiscalia(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fiscalia with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fiscalia: %w", err)
	}

	return fiscalia, nil
}

// List retrieves fiscalias ordered by name, optionally filtered by active flag
func (r *fiscaliaRepository) List(ctx context.Context, active *bool) ([]models.Fiscalia, error) {
	builder := sq.Select(fiscaliaColumns...).From("fiscalias").OrderBy("name ASC")
	if active != nil {
		builder = builder.Where(sq.Eq{"active": *active})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build fiscalia list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscalias: %w", err)
	}
	defer rows.Close()

	fiscalias := []models.Fiscalia{}
	for rows.Next() {
		fiscalia, err := scanFiscalia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscalia: %w", err)
		}
		fiscalias = append(fiscalias, *fiscalia)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscalias: %w", err)
	}

	return fiscalias, nil
}

// Create creates a new fiscalia
func (r *fiscaliaRepository) Create(ctx context.Context, fiscalia *models.Fiscalia) error {
	if fiscalia.CreatedAt.IsZero() {
		fiscalia.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO fiscalias (name, address, phone, active, created_at) VALUES (?, ?, ?, ?, ?)`,
		fiscalia.Name, fiscalia.Address, fiscalia.Phone, fiscalia.Active, fiscalia.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fiscalia: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	fiscalia.ID = id
	return nil
}

// Update updates an existing fiscalia
func (r *fiscaliaRepository) Update(ctx context.Context, fiscalia *models.Fiscalia) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE fiscalias SET name = ?, address = ?, phone = ?, active = ? WHERE id = ?`,
		fiscalia.Name, fiscalia.Address, fiscalia.Phone, fiscalia.Active, fiscalia.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fiscalia: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("fiscalia with ID %d", fiscalia.ID))
}

// Delete deletes a fiscalia by ID
func (r *fiscaliaRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fiscalias WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fiscalia: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("fiscalia with ID %d", id))
}
