package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
)

// LoginResult is returned by a successful login
type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Fiscal    *models.Fiscal `json:"fiscal"`
}

// AuthService authenticates prosecutors and issues bearer tokens
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// LoginByEmail issues a token for an identity already verified by the SSO provider
	LoginByEmail(ctx context.Context, email string) (*LoginResult, error)
	CurrentFiscal(ctx context.Context, fiscalID int64) (*models.Fiscal, error)
}

type authService struct {
	fiscalRepo repositories.FiscalRepository
	tokens     *TokenIssuer
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(fiscalRepo repositories.FiscalRepository, tokens *TokenIssuer, logger *slog.Logger) AuthService {
	return &authService{
		fiscalRepo: fiscalRepo,
		tokens:     tokens,
		logger:     logger,
	}
}

var errInvalidCredentials = newError(KindUnauthorized, "invalid email or password")

// Login checks the password against an active prosecutor's bcrypt hash.
// Unknown emails and wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, newError(KindValidation, "email and password are required")
	}

	fiscal, err := s.lookupActive(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(fiscal.PasswordHash), []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "login rejected", "fiscal_id", fiscal.ID, "reason", "password mismatch")
		return nil, errInvalidCredentials
	}

	return s.issue(ctx, fiscal, "password")
}

func (s *authService) LoginByEmail(ctx context.Context, email string) (*LoginResult, error) {
	if email == "" {
		return nil, newError(KindUnauthorized, "identity provider returned no email")
	}

	fiscal, err := s.lookupActive(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, fiscal, "sso")
}

func (s *authService) CurrentFiscal(ctx context.Context, fiscalID int64) (*models.Fiscal, error) {
	fiscal, err := s.fiscalRepo.GetByID(ctx, fiscalID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(KindUnauthorized, "prosecutor no longer exists")
		}
		return nil, fmt.Errorf("failed to get prosecutor: %w", err)
	}
	if !fiscal.Active {
		return nil, newError(KindUnauthorized, "prosecutor account is inactive")
	}
	return fiscal, nil
}

func (s *authService) lookupActive(ctx context.Context, email string) (*models.Fiscal, error) {
	fiscal, err := s.fiscalRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up prosecutor: %w", err)
	}
	if !fiscal.Active {
		return nil, newError(KindUnauthorized, "prosecutor account is inactive")
	}
	return fiscal, nil
}

func (s *authService) issue(ctx context.Context, fiscal *models.Fiscal, method string) (*LoginResult, error) {
	token, expiresAt, err := s.tokens.Issue(fiscal)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "prosecutor logged in", "fiscal_id", fiscal.ID, "method", method)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Fiscal: fiscal}, nil
}
