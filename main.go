package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fiscalia/case-tracker/authenticator"
	"github.com/fiscalia/case-tracker/config"
	"github.com/fiscalia/case-tracker/controllers"
	"github.com/fiscalia/case-tracker/database"
	"github.com/fiscalia/case-tracker/metrics"
	"github.com/fiscalia/case-tracker/repositories"
	"github.com/fiscalia/case-tracker/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("case tracker stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.InitializeDatabase(ctx, cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	m := metrics.New(prometheus.DefaultRegisterer)
	tokens := services.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	srvs := services.NewServices(repos, tokens, m, logger)

	var sso authenticator.Provider
	if cfg.SSO.Enabled() {
		provider, err := authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.SSO.Domain,
			ClientID:     cfg.SSO.ClientID,
			ClientSecret: cfg.SSO.ClientSecret,
			CallbackURL:  cfg.SSO.CallbackURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize SSO provider: %w", err)
		}
		sso = provider
	}

	ctrl := controllers.NewControllers(srvs, sso, controllers.NewHealthController(db), cfg.Server.UseHTTPS, logger)
	handler := ctrl.Routes(controllers.RouterOptions{
		Tokens:         tokens,
		Gatherer:       prometheus.DefaultGatherer,
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("case tracker starting",
			"port", cfg.Server.Port,
			"database", cfg.Database.Path,
			"sso_enabled", sso != nil,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
