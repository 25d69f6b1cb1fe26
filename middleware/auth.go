package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fiscalia/case-tracker/userctx"
)

// TokenParser validates a bearer token and returns the identity it carries
type TokenParser interface {
	Parse(token string) (userctx.Identity, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the prosecutor's identity in the request context.
func RequireAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "access token required")
				return
			}

			identity, err := tokens.Parse(token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(userctx.SetIdentity(r.Context(), identity)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
		"error":   "unauthorized",
	})
}
