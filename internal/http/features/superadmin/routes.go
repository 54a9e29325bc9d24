package superadmin

import "github.com/go-chi/chi/v5"

// Routes returns the super-admin routes, to be mounted under /api/super-admin.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/dashboard", h.Dashboard)
	r.Get("/tenants", h.ListTenants)
	r.Get("/tenants/{tenant_id}", h.GetTenant)
	r.Get("/billing", h.Billing)
	r.Get("/plans", h.ListPlans)
	r.Get("/plans/{key}", h.GetPlan)
	r.Get("/feature-flags", h.FeatureFlags)
	r.Get("/audit-logs", h.AuditLogs)
	r.Get("/system-health", h.SystemHealth)
	return r
}
