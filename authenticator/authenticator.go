package authenticator

import (
	"context"
	"strings"
)

// Token represents the tokens returned by the identity provider
type Token struct {
	AccessToken string
	IDToken     string
	Expiry      int64
}

// Claims represents user claims from a verified ID token
type Claims map[string]any

// Email returns the lower-cased email claim, or "" when it is missing or unverified
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	if verified, ok := c["email_verified"].(bool); ok && !verified {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email))
}

// Provider abstracts the single sign-on identity provider
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
