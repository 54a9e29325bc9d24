package superadmin

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/nexylomedia/superadmin-api/internal/domain"
	"github.com/nexylomedia/superadmin-api/internal/http/middleware"
	"github.com/nexylomedia/superadmin-api/internal/httputil"
)

// Source supplies the super-admin payloads.
type Source interface {
	Dashboard() domain.DashboardSummary
	Tenants() []domain.Tenant
	TenantDetail(tenantID string) domain.TenantDetail
	Billing() domain.BillingOverview
	Plans() []domain.Plan
	Plan(key string) (domain.Plan, error)
	FeatureFlags() map[string]domain.FeatureFlag
	AuditLogs() []domain.AuditLogEntry
	SystemHealth() domain.SystemHealthReport
}

// Handler handles the super-admin dashboard endpoints.
type Handler struct {
	logger *slog.Logger
	source Source
}

// NewHandler creates a new super-admin handler.
func NewHandler(logger *slog.Logger, source Source) *Handler {
	return &Handler{
		logger: logger,
		source: source,
	}
}

// TenantsResponse wraps the tenant catalogue.
type TenantsResponse struct {
	Tenants []domain.Tenant `json:"tenants"`
}

// PlansResponse wraps the plan catalogue.
type PlansResponse struct {
	Plans []domain.Plan `json:"plans"`
}

// PlanResponse wraps a single plan.
type PlanResponse struct {
	Plan domain.Plan `json:"plan"`
}

// FeatureFlagsResponse wraps the flag matrix.
type FeatureFlagsResponse struct {
	Flags map[string]domain.FeatureFlag `json:"flags"`
}

// AuditLogsResponse wraps the audit log.
type AuditLogsResponse struct {
	Logs []domain.AuditLogEntry `json:"logs"`
}

// pathParam returns the decoded value of a route parameter. Chi matches on
// r.URL.RawPath when it is set, leaving the parameter percent-encoded.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

// Dashboard returns headline platform metrics.
// GET /api/super-admin/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.source.Dashboard())
}

// ListTenants returns the tenant catalogue.
// GET /api/super-admin/tenants
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, TenantsResponse{Tenants: h.source.Tenants()})
}

// GetTenant returns the detail view of one tenant. The id is not validated.
// GET /api/super-admin/tenants/{tenant_id}
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	tenantID := pathParam(r, "tenant_id")
	httputil.JSON(w, http.StatusOK, h.source.TenantDetail(tenantID))
}

// Billing returns plans and recent invoices.
// GET /api/super-admin/billing
func (h *Handler) Billing(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.source.Billing())
}

// ListPlans returns the plan catalogue.
// GET /api/super-admin/plans
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, PlansResponse{Plans: h.source.Plans()})
}

// GetPlan returns one plan by key.
// GET /api/super-admin/plans/{key}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	key := pathParam(r, "key")

	plan, err := h.source.Plan(key)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			httputil.Error(w, http.StatusNotFound, "plan not found")
			return
		}
		h.logger.Error("failed to load plan", "error", err, "key", key,
			"request_id", middleware.GetRequestID(r.Context()))
		httputil.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.JSON(w, http.StatusOK, PlanResponse{Plan: plan})
}

// FeatureFlags returns the per-tenant flag matrix.
// GET /api/super-admin/feature-flags
func (h *Handler) FeatureFlags(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, FeatureFlagsResponse{Flags: h.source.FeatureFlags()})
}

// AuditLogs returns recent operator actions.
// GET /api/super-admin/audit-logs
func (h *Handler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, AuditLogsResponse{Logs: h.source.AuditLogs()})
}

// SystemHealth returns service states and open incidents.
// GET /api/super-admin/system-health
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.source.SystemHealth())
}
