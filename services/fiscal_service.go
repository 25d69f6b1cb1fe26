package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
)

// FiscaliaService interface defines organizational unit management
type FiscaliaService interface {
	ListFiscalias(ctx context.Context, active *bool) ([]models.Fiscalia, error)
	GetFiscalia(ctx context.Context, id int64) (*models.Fiscalia, error)
	CreateFiscalia(ctx context.Context, form *models.FiscaliaForm) (*models.Fiscalia, error)
	UpdateFiscalia(ctx context.Context, id int64, form *models.FiscaliaForm) (*models.Fiscalia, error)
	DeleteFiscalia(ctx context.Context, id int64) error
}

type fiscaliaService struct {
	fiscaliaRepo repositories.FiscaliaRepository
	fiscalRepo   repositories.FiscalRepository
	logger       *slog.Logger
}

// NewFiscaliaService creates a new fiscalia service
func NewFiscaliaService(fiscaliaRepo repositories.FiscaliaRepository, fiscalRepo repositories.FiscalRepository, logger *slog.Logger) FiscaliaService {
	return &fiscaliaService{
		fiscaliaRepo: fiscaliaRepo,
		fiscalRepo:   fiscalRepo,
		logger:       logger,
	}
}

func (s *fiscaliaService) ListFiscalias(ctx context.Context, active *bool) ([]models.Fiscalia, error) {
	fiscalias, err := s.fiscaliaRepo.List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("failed to list fiscalias: %w", err)
	}
	return fiscalias, nil
}

func (s *fiscaliaService) GetFiscalia(ctx context.Context, id int64) (*models.Fiscalia, error) {
	if id <= 0 {
		return nil, newError(KindValidation, "invalid fiscalia ID: %d", id)
	}
	fiscalia, err := s.fiscaliaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get fiscalia")
	}
	return fiscalia, nil
}

// CreateFiscalia creates a new organizational unit. Units are active unless stated otherwise.
func (s *fiscaliaService) CreateFiscalia(ctx context.Context, form *models.FiscaliaForm) (*models.Fiscalia, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	fiscalia := &models.Fiscalia{
		Name:    strings.TrimSpace(form.Name),
		Address: strings.TrimSpace(form.Address),
		Phone:   strings.TrimSpace(form.Phone),
		Active:  form.Active == nil || *form.Active,
	}

	if err := s.fiscaliaRepo.Create(ctx, fiscalia); err != nil {
		return nil, fmt.Errorf("failed to create fiscalia: %w", err)
	}

	s.logger.InfoContext(ctx, "fiscalia created", "fiscalia_id", fiscalia.ID, "name", fiscalia.Name)
	return fiscalia, nil
}

// UpdateFiscalia replaces the unit's details. A nil Active keeps the current flag.
func (s *fiscaliaService) UpdateFiscalia(ctx context.Context, id int64, form *models.FiscaliaForm) (*models.Fiscalia, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	fiscalia, err := s.GetFiscalia(ctx, id)
	if err != nil {
		return nil, err
	}

	fiscalia.Name = strings.TrimSpace(form.Name)
	fiscalia.Address = strings.TrimSpace(form.Address)
	fiscalia.Phone = strings.TrimSpace(form.Phone)
	if form.Active != nil {
		fiscalia.Active = *form.Active
	}

	if err := s.fiscaliaRepo.Update(ctx, fiscalia); err != nil {
		return nil, fromRepository(err, "update fiscalia")
	}
	return fiscalia, nil
}

// DeleteFiscalia removes a unit that has no prosecutors
func (s *fiscaliaService) DeleteFiscalia(ctx context.Context, id int64) error {
	if _, err := s.GetFiscalia(ctx, id); err != nil {
		return err
	}

	count, err := s.fiscalRepo.CountByFiscalia(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check fiscalia prosecutors: %w", err)
	}
	if count > 0 {
		return newError(KindConflict, "cannot delete fiscalia: %d prosecutor(s) still belong to it", count)
	}

	if err := s.fiscaliaRepo.Delete(ctx, id); err != nil {
		return fromRepository(err, "delete fiscalia")
	}

	s.logger.InfoContext(ctx, "fiscalia deleted", "fiscalia_id", id)
	return nil
}

// FiscalService interface defines prosecutor directory management
type FiscalService interface {
	ListFiscales(ctx context.Context, filter models.FiscalFilter) ([]models.Fiscal, error)
	GetFiscal(ctx context.Context, id int64) (*models.Fiscal, error)
	CreateFiscal(ctx context.Context, form *models.FiscalForm) (*models.Fiscal, error)
	UpdateFiscal(ctx context.Context, id int64, form *models.FiscalForm) (*models.Fiscal, error)
	DeleteFiscal(ctx context.Context, id int64) error
}

type fiscalService struct {
	fiscalRepo   repositories.FiscalRepository
	fiscaliaRepo repositories.FiscaliaRepository
	caseRepo     repositories.CaseRepository
	logger       *slog.Logger
}

// NewFiscalService creates a new prosecutor service
func NewFiscalService(
	fiscalRepo repositories.FiscalRepository,
	fiscaliaRepo repositories.FiscaliaRepository,
	caseRepo repositories.CaseRepository,
	logger *slog.Logger,
) FiscalService {
	return &fiscalService{
		fiscalRepo:   fiscalRepo,
		fiscaliaRepo: fiscaliaRepo,
		caseRepo:     caseRepo,
		logger:       logger,
	}
}

func (s *fiscalService) ListFiscales(ctx context.Context, filter models.FiscalFilter) ([]models.Fiscal, error) {
	fiscales, err := s.fiscalRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list prosecutors: %w", err)
	}
	return fiscales, nil
}

func (s *fiscalService) GetFiscal(ctx context.Context, id int64) (*models.Fiscal, error) {
	if id <= 0 {
		return nil, newError(KindValidation, "invalid prosecutor ID: %d", id)
	}
	fiscal, err := s.fiscalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "get prosecutor")
	}
	return fiscal, nil
}

// CreateFiscal registers a prosecutor with a bcrypt-hashed password
func (s *fiscalService) CreateFiscal(ctx context.Context, form *models.FiscalForm) (*models.Fiscal, error) {
	if errs := form.Validate(true); len(errs) > 0 {
		return nil, validationError(errs)
	}

	email := normalizeEmail(form.Email)
	if err := s.checkEmailAvailable(ctx, email, 0); err != nil {
		return nil, err
	}
	if err := s.checkFiscalia(ctx, form.FiscaliaID); err != nil {
		return nil, err
	}

	hash, err := hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	fiscal := &models.Fiscal{
		Name:         strings.TrimSpace(form.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         form.Role,
		Active:       form.Active == nil || *form.Active,
		FiscaliaID:   form.FiscaliaID,
	}

	if err := s.fiscalRepo.Create(ctx, fiscal); err != nil {
		return nil, fmt.Errorf("failed to create prosecutor: %w", err)
	}

	s.logger.InfoContext(ctx, "prosecutor created", "fiscal_id", fiscal.ID, "fiscalia_id", fiscal.FiscaliaID)
	return fiscal, nil
}

// UpdateFiscal replaces the prosecutor's details. An empty password keeps the current hash.
func (s *fiscalService) UpdateFiscal(ctx context.Context, id int64, form *models.FiscalForm) (*models.Fiscal, error) {
	if errs := form.Validate(false); len(errs) > 0 {
		return nil, validationError(errs)
	}

	fiscal, err := s.GetFiscal(ctx, id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(form.Email)
	if email != fiscal.Email {
		if err := s.checkEmailAvailable(ctx, email, id); err != nil {
			return nil, err
		}
	}
	if form.FiscaliaID != fiscal.FiscaliaID {
		if err := s.checkFiscalia(ctx, form.FiscaliaID); err != nil {
			return nil, err
		}
	}

	fiscal.Name = strings.TrimSpace(form.Name)
	fiscal.Email = email
	fiscal.FiscaliaID = form.FiscaliaID
	if form.Role != "" {
		fiscal.Role = form.Role
	}
	if form.Active != nil {
		fiscal.Active = *form.Active
	}
	if form.Password != "" {
		hash, err := hashPassword(form.Password)
		if err != nil {
			return nil, err
		}
		fiscal.PasswordHash = hash
	}

	if err := s.fiscalRepo.Update(ctx, fiscal); err != nil {
		return nil, fromRepository(err, "update prosecutor")
	}
	return fiscal, nil
}

// DeleteFiscal removes a prosecutor with no assigned cases. Prosecutors that
// still hold cases must be deactivated instead.
func (s *fiscalService) DeleteFiscal(ctx context.Context, id int64) error {
	if _, err := s.GetFiscal(ctx, id); err != nil {
		return err
	}

	count, err := s.caseRepo.CountByFiscal(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check assigned cases: %w", err)
	}
	if count > 0 {
		return newError(KindConflict, "cannot delete prosecutor: %d case(s) still assigned, deactivate instead", count)
	}

	if err := s.fiscalRepo.Delete(ctx, id); err != nil {
		return fromRepository(err, "delete prosecutor")
	}

	s.logger.InfoContext(ctx, "prosecutor deleted", "fiscal_id", id)
	return nil
}

func (s *fiscalService) checkEmailAvailable(ctx context.Context, email string, selfID int64) error {
	existing, err := s.fiscalRepo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check email: %w", err)
	case existing.ID != selfID:
		return newError(KindConflict, "a prosecutor with email %s already exists", email)
	}
	return nil
}

func (s *fiscalService) checkFiscalia(ctx context.Context, fiscaliaID int64) error {
	if _, err := s.fiscaliaRepo.GetByID(ctx, fiscaliaID); err != nil {
		return fromRepository(err, "get fiscalia")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
