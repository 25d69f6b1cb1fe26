package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimsEmail(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   string
	}{
		{"normalized", Claims{"email": " Ana@Fiscalia.GOB "}, "ana@fiscalia.gob"},
		{"verified", Claims{"email": "ana@fiscalia.gob", "email_verified": true}, "ana@fiscalia.gob"},
		{"unverified", Claims{"email": "ana@fiscalia.gob", "email_verified": false}, ""},
		{"missing", Claims{"sub": "auth|123"}, ""},
		{"wrong type", Claims{"email": 42}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claims.Email())
		})
	}
}

func TestNewOpenIDProvider_RequiresConfig(t *testing.T) {
	complete := OpenIDConfig{
		Domain:       "login.example.com",
		ClientID:     "client",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/api/auth/sso/callback",
	}

	tests := []struct {
		name    string
		mutate  func(*OpenIDConfig)
		wantErr string
	}{
		{"domain", func(c *OpenIDConfig) { c.Domain = "" }, "domain is required"},
		{"client id", func(c *OpenIDConfig) { c.ClientID = "" }, "client ID is required"},
		{"client secret", func(c *OpenIDConfig) { c.ClientSecret = "" }, "client secret is required"},
		{"callback", func(c *OpenIDConfig) { c.CallbackURL = "" }, "callback URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := complete
			tt.mutate(&cfg)

			_, err := NewOpenIDProvider(context.Background(), cfg)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
