// Package adminapi exposes the super-admin dashboard API as a mountable
// router, for services that want to serve it next to their own routes.
//
// Basic usage:
//
//	api := adminapi.New(adminapi.Config{})
//
//	r := chi.NewRouter()
//	r.Mount("/api/super-admin", api.Router())
//	r.Get("/api/health", api.HealthHandler())
//	http.ListenAndServe(":8080", r)
//
// With the standard library ServeMux:
//
//	mux := http.NewServeMux()
//	mux.Handle("/api/super-admin/", http.StripPrefix("/api/super-admin", api.Handler()))
package adminapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexylomedia/superadmin-api/internal/catalog"
	"github.com/nexylomedia/superadmin-api/internal/http/features/superadmin"
	"github.com/nexylomedia/superadmin-api/internal/http/middleware"
	"github.com/nexylomedia/superadmin-api/internal/httputil"
)

// Config holds the configuration for the embedded API.
type Config struct {
	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger

	// Now is the clock the sample data is relative to (default: time.Now).
	Now func() time.Time
}

// API is a mountable super-admin API instance.
type API struct {
	logger  *slog.Logger
	handler *superadmin.Handler
}

// New creates a new API instance.
func New(cfg Config) *API {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &API{
		logger:  cfg.Logger,
		handler: superadmin.NewHandler(cfg.Logger, catalog.New(cfg.Now)),
	}
}

// Router returns a chi router with the super-admin routes and request
// ID, logging and panic recovery middleware.
//
// Routes:
//
//	GET /dashboard              - KPIs, system health, recent activity
//	GET /tenants                - tenant catalogue
//	GET /tenants/{tenant_id}    - tenant detail
//	GET /billing                - plans and invoices
//	GET /plans                  - plan catalogue
//	GET /plans/{key}            - single plan
//	GET /feature-flags          - per-tenant flag matrix
//	GET /audit-logs             - operator actions
//	GET /system-health          - services and incidents
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.Recover(a.logger))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.Mount("/", a.handler.Routes())
	return r
}

// Handler returns the router as an http.Handler.
func (a *API) Handler() http.Handler {
	return a.Router()
}

// HealthHandler returns a simple health check handler.
func (a *API) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
