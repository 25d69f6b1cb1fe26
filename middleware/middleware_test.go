package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalia/case-tracker/userctx"
)

type stubParser map[string]userctx.Identity

func (s stubParser) Parse(token string) (userctx.Identity, error) {
	id, ok := s[token]
	if !ok {
		return userctx.Identity{}, errors.New("invalid token")
	}
	return id, nil
}

func TestRequireAuth(t *testing.T) {
	parser := stubParser{"good": {FiscalID: 3, Email: "ana@fiscalia.gob"}}

	var seen userctx.Identity
	handler := RequireAuth(parser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = userctx.GetIdentity(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer good", http.StatusNoContent},
		{"lowercase scheme", "bearer good", http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer forged", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = userctx.Identity{}
			req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, int64(3), seen.FiscalID)
			} else {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "unauthorized", body["error"])
			}
		})
	}
}

func TestAuditLogger_LogsMutationsOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := AuditLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	get := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	handler.ServeHTTP(httptest.NewRecorder(), get)
	assert.Zero(t, buf.Len())

	post := httptest.NewRequest(http.MethodPost, "/api/cases", nil)
	post.Header.Set("X-Forwarded-For", "10.0.0.7, 172.16.0.1")
	post = post.WithContext(userctx.SetIdentity(post.Context(), userctx.Identity{FiscalID: 3, Email: "ana@fiscalia.gob"}))
	handler.ServeHTTP(httptest.NewRecorder(), post)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/api/cases", line["path"])
	assert.Equal(t, float64(http.StatusCreated), line["status"])
	assert.Equal(t, "ana@fiscalia.gob", line["user"])
	assert.Equal(t, "10.0.0.7", line["ip"])
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.20:51234"
	assert.Equal(t, "192.168.1.20", getIPAddress(req))

	req.Header.Set("X-Real-IP", "10.1.1.1")
	assert.Equal(t, "10.1.1.1", getIPAddress(req))
}
