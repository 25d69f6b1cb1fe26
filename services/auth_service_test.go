package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/repositories"
	"github.com/fiscalia/case-tracker/repositories/mocks"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

func activeFiscalWithPassword(t *testing.T, password string) *models.Fiscal {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Fiscal{
		ID:           4,
		Email:        "luis@fiscalia.gob",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
		FiscaliaID:   20,
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	fiscalRepo := mocks.NewMockFiscalRepository(t)
	fiscalRepo.EXPECT().GetByEmail(mock.Anything, "luis@fiscalia.gob").Return(activeFiscalWithPassword(t, "s3cret-pass"), nil)

	tokens := NewTokenIssuer(testSecret, "case-tracker", time.Hour)
	service := NewAuthService(fiscalRepo, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := service.Login(context.Background(), " Luis@Fiscalia.gob ", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	identity, err := tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(4), identity.FiscalID)
	assert.Equal(t, "luis@fiscalia.gob", identity.Email)
	assert.Equal(t, models.RoleAdmin, identity.Role)
	assert.Equal(t, int64(20), identity.FiscaliaID)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	fiscalRepo := mocks.NewMockFiscalRepository(t)
	fiscalRepo.EXPECT().GetByEmail(mock.Anything, "luis@fiscalia.gob").Return(activeFiscalWithPassword(t, "s3cret-pass"), nil)
	fiscalRepo.EXPECT().GetByEmail(mock.Anything, "nobody@fiscalia.gob").
		Return(nil, fmt.Errorf("prosecutor with email nobody@fiscalia.gob: %w", repositories.ErrNotFound))

	service := NewAuthService(fiscalRepo, NewTokenIssuer(testSecret, "case-tracker", time.Hour), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, wrongPassword := service.Login(context.Background(), "luis@fiscalia.gob", "guess")
	_, unknownEmail := service.Login(context.Background(), "nobody@fiscalia.gob", "guess")

	assert.True(t, IsKind(wrongPassword, KindUnauthorized))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_InactiveProsecutor(t *testing.T) {
	inactive := activeFiscalWithPassword(t, "s3cret-pass")
	inactive.Active = false
	fiscalRepo := mocks.NewMockFiscalRepository(t)
	fiscalRepo.EXPECT().GetByEmail(mock.Anything, "luis@fiscalia.gob").Return(inactive, nil)

	service := NewAuthService(fiscalRepo, NewTokenIssuer(testSecret, "case-tracker", time.Hour), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := service.Login(context.Background(), "luis@fiscalia.gob", "s3cret-pass")

	assert.True(t, IsKind(err, KindUnauthorized))
}

func TestTokenIssuer_RejectsExpiredAndForeignTokens(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "case-tracker", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := issuer.Issue(&models.Fiscal{ID: 1})
	require.NoError(t, err)

	fresh := NewTokenIssuer(testSecret, "case-tracker", time.Minute)
	_, err = fresh.Parse(expired)
	assert.True(t, IsKind(err, KindUnauthorized))
	assert.Contains(t, err.Error(), "expired")

	other := NewTokenIssuer("another-secret-that-is-at-least-32-chars", "case-tracker", time.Minute)
	foreign, _, err := other.Issue(&models.Fiscal{ID: 1})
	require.NoError(t, err)
	_, err = fresh.Parse(foreign)
	assert.True(t, IsKind(err, KindUnauthorized))

	wrongIssuer := NewTokenIssuer(testSecret, "someone-else", time.Minute)
	token, _, err := wrongIssuer.Issue(&models.Fiscal{ID: 1})
	require.NoError(t, err)
	_, err = fresh.Parse(token)
	assert.True(t, IsKind(err, KindUnauthorized))

	_, err = fresh.Parse("")
	assert.True(t, IsKind(err, KindUnauthorized))
}
