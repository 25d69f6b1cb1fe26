package controllers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/fiscalia/case-tracker/authenticator"
	"github.com/fiscalia/case-tracker/services"
	"github.com/fiscalia/case-tracker/userctx"
)

const stateCookieName = "sso_state"

// AuthController handles login, token verification and single sign-on
type AuthController struct {
	services      *services.Services
	sso           authenticator.Provider
	secureCookies bool
	logger        *slog.Logger
}

// NewAuthController creates a new auth controller. sso may be nil.
func NewAuthController(services *services.Services, sso authenticator.Provider, secureCookies bool, logger *slog.Logger) *AuthController {
	return &AuthController{
		services:      services,
		sso:           sso,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := ac.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Login successful", result)
}

// Verify handles GET /api/auth/verify and returns the authenticated prosecutor
func (ac *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	fiscal, err := ac.services.Auth.CurrentFiscal(r.Context(), userctx.GetFiscalID(r.Context()))
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Token is valid", fiscal)
}

// SSOLogin handles GET /api/auth/sso/login by redirecting to the identity provider
func (ac *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if ac.sso == nil {
		writeJSON(w, http.StatusNotFound, Response{Message: "single sign-on is not configured", Error: string(services.KindNotFound)})
		return
	}

	state, err := generateRandomState()
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api/auth/sso",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   ac.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, ac.sso.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// SSOCallback handles GET /api/auth/sso/callback. The verified email claim must
// belong to an active prosecutor; the response carries the same token as Login.
func (ac *AuthController) SSOCallback(w http.ResponseWriter, r *http.Request) {
	if ac.sso == nil {
		writeJSON(w, http.StatusNotFound, Response{Message: "single sign-on is not configured", Error: string(services.KindNotFound)})
		return
	}

	cookie, err := r.Cookie(stateCookieName)
	if err != nil {
		writeBadRequest(w, "state not found, restart the login")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Path: "/api/auth/sso", MaxAge: -1})

	if subtle.ConstantTimeCompare([]byte(r.URL.Query().Get("state")), []byte(cookie.Value)) != 1 {
		writeBadRequest(w, "invalid state parameter")
		return
	}

	token, err := ac.sso.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		ac.logger.WarnContext(r.Context(), "sso code exchange failed", "error", err)
		writeJSON(w, http.StatusUnauthorized, Response{Message: "failed to exchange authorization code", Error: string(services.KindUnauthorized)})
		return
	}

	claims, err := ac.sso.GetClaims(r.Context(), token)
	if err != nil {
		ac.logger.WarnContext(r.Context(), "sso id token rejected", "error", err)
		writeJSON(w, http.StatusUnauthorized, Response{Message: "failed to verify ID token", Error: string(services.KindUnauthorized)})
		return
	}

	result, err := ac.services.Auth.LoginByEmail(r.Context(), claims.Email())
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	writeData(w, http.StatusOK, "Login successful", result)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
