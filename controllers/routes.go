package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fiscalia/case-tracker/middleware"
)

// RouterOptions holds what the router needs besides the controllers
type RouterOptions struct {
	Tokens         middleware.TokenParser
	Gatherer       prometheus.Gatherer
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

// Routes configures all routes
func (ctrl *Controllers) Routes(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", ctrl.Health.Check)
	r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", ctrl.Auth.Login)
		r.Get("/auth/sso/login", ctrl.Auth.SSOLogin)
		r.Get("/auth/sso/callback", ctrl.Auth.SSOCallback)

		// PROTECTED ROUTES (bearer token required)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(opts.Tokens))
			r.Use(middleware.AuditLogger(opts.Logger))

			r.Get("/auth/verify", ctrl.Auth.Verify)

			r.Route("/cases", func(r chi.Router) {
				r.Get("/", ctrl.Cases.List)
				r.Post("/", ctrl.Cases.Create)
				r.Get("/{id}", ctrl.Cases.Get)
				r.Put("/{id}", ctrl.Cases.Update)
				r.Delete("/{id}", ctrl.Cases.Delete)
			})

			r.Route("/fiscalias", func(r chi.Router) {
				r.Get("/", ctrl.Directory.ListFiscalias)
				r.Post("/", ctrl.Directory.CreateFiscalia)
				r.Get("/{id}", ctrl.Directory.GetFiscalia)
				r.Put("/{id}", ctrl.Directory.UpdateFiscalia)
				r.Delete("/{id}", ctrl.Directory.DeleteFiscalia)
			})

			r.Route("/fiscales", func(r chi.Router) {
				r.Get("/", ctrl.Directory.ListFiscales)
				r.Post("/", ctrl.Directory.CreateFiscal)
				r.Get("/{id}", ctrl.Directory.GetFiscal)
				r.Put("/{id}", ctrl.Directory.UpdateFiscal)
				r.Delete("/{id}", ctrl.Directory.DeleteFiscal)
			})

			r.Route("/audit-entries", func(r chi.Router) {
				r.Get("/", ctrl.Logs.ListAuditEntries)
				r.Post("/", ctrl.Logs.CreateAuditEntry)
				r.Get("/{id}", ctrl.Logs.GetAuditEntry)
			})

			r.Route("/reassignment-logs", func(r chi.Router) {
				r.Get("/", ctrl.Logs.ListFailedReassignments)
				r.Post("/", ctrl.Logs.CreateFailedReassignment)
				r.Get("/report/fiscalia", ctrl.Reports.FailedReassignmentsByFiscalia)
				r.Get("/{id}", ctrl.Logs.GetFailedReassignment)
			})

			r.Get("/reports/cases-by-status", ctrl.Reports.CasesByStatus)
		})
	})

	return r
}
