package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nexylomedia/superadmin-api/internal/config"
	"github.com/nexylomedia/superadmin-api/internal/http/features/pages"
	"github.com/nexylomedia/superadmin-api/internal/http/features/superadmin"
	"github.com/nexylomedia/superadmin-api/internal/http/middleware"
	"github.com/nexylomedia/superadmin-api/internal/httputil"
	"github.com/nexylomedia/superadmin-api/internal/metrics"
)

// SuperAdminPrefix is the mount point of the super-admin routes.
const SuperAdminPrefix = "/api/super-admin"

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger          *slog.Logger
	Source          superadmin.Source
	Metrics         *metrics.Metrics // nil disables /metrics
	CORS            config.CORSConfig
	SecurityHeaders config.SecurityHeadersConfig
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         cfg.CORS.MaxAge,
	}))

	// Must be set before Mount so sub-routers inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	pagesHandler, err := pages.NewHandler()
	if err != nil {
		return nil, err
	}
	r.Get("/", pagesHandler.Index)

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	superAdminHandler := superadmin.NewHandler(cfg.Logger, cfg.Source)
	r.Mount(SuperAdminPrefix, superAdminHandler.Routes())

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	return r, nil
}
