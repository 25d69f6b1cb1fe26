package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fiscalia/case-tracker/models"
	"github.com/fiscalia/case-tracker/userctx"
)

// TokenIssuer signs and validates HS256 bearer tokens for prosecutors
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a token issuer. secret should be at least 32 characters.
func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// fiscalClaims carries the prosecutor's identity; the subject is the fiscal ID
type fiscalClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	Role       string `json:"role"`
	FiscaliaID int64  `json:"fiscaliaId"`
}

// Issue signs a token for the prosecutor and returns it with its expiry
func (t *TokenIssuer) Issue(fiscal *models.Fiscal) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	claims := fiscalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(fiscal.ID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:      fiscal.Email,
		Role:       fiscal.Role,
		FiscaliaID: fiscal.FiscaliaID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates a token and returns the identity it carries.
// Every failure is reported as KindUnauthorized.
func (t *TokenIssuer) Parse(tokenString string) (userctx.Identity, error) {
	if tokenString == "" {
		return userctx.Identity{}, newError(KindUnauthorized, "missing token")
	}

	token, err := jwt.ParseWithClaims(tokenString, &fiscalClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return userctx.Identity{}, &ServiceError{Kind: KindUnauthorized, Message: "token has expired", Err: err}
		}
		return userctx.Identity{}, &ServiceError{Kind: KindUnauthorized, Message: "invalid token", Err: err}
	}

	claims, ok := token.Claims.(*fiscalClaims)
	if !ok || !token.Valid {
		return userctx.Identity{}, newError(KindUnauthorized, "invalid token claims")
	}

	fiscalID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || fiscalID <= 0 {
		return userctx.Identity{}, newError(KindUnauthorized, "invalid token subject")
	}

	return userctx.Identity{
		FiscalID:   fiscalID,
		Email:      claims.Email,
		Role:       claims.Role,
		FiscaliaID: claims.FiscaliaID,
	}, nil
}
