// Package catalog builds the sample payloads served by the super-admin API.
//
// Every builder derives its timestamps from the catalog clock at call time,
// so two calls a minute apart return the same shape shifted by a minute.
package catalog

import (
	"time"

	"github.com/nexylomedia/superadmin-api/internal/domain"
)

// Clock returns the current time.
type Clock func() time.Time

// Catalog produces sample dashboard data relative to its clock.
type Catalog struct {
	now Clock
}

// New creates a catalog. A nil clock defaults to time.Now.
func New(now Clock) *Catalog {
	if now == nil {
		now = time.Now
	}
	return &Catalog{now: now}
}

func (c *Catalog) utcNow() time.Time {
	return c.now().UTC()
}

func ptr[T any](v T) *T {
	return &v
}

// Dashboard returns the headline KPIs, system health map and activity feed.
func (c *Catalog) Dashboard() domain.DashboardSummary {
	now := c.utcNow()
	return domain.DashboardSummary{
		KPIs: []domain.KPI{
			{Label: "Total tenants", Value: 28, Change: "+3", Trend: domain.TrendUp},
			{Label: "Active users", Value: 412, Change: "+26", Trend: domain.TrendUp},
			{Label: "API usage (24h)", Value: "68k", Change: "+12%", Trend: domain.TrendNeutral},
			{Label: "Automation failures", Value: 2, Change: "-4", Trend: domain.TrendDown},
		},
		SystemHealth: map[string]domain.ServiceHealth{
			"n8n":             {Status: domain.ServiceOperational, LastHeartbeat: ptr(now)},
			"pagespeed_quota": {Used: ptr[int64](72), Limit: ptr[int64](100)},
			"ai_tokens":       {Used: ptr[int64](420_000), Limit: ptr[int64](600_000)},
		},
		RecentActivity: []domain.Activity{
			{
				Timestamp: now.Add(-25 * time.Minute),
				Type:      "tenant_signup",
				Tenant:    "Northwind Retail",
				Message:   "New tenant created on Growth plan.",
			},
			{
				Timestamp: now.Add(-2 * time.Hour),
				Type:      "alert",
				Tenant:    "Acme Logistics",
				Message:   "Automation flow failed 3 times in a row.",
			},
			{
				Timestamp: now.Add(-5 * time.Hour),
				Type:      "billing",
				Tenant:    "Signal Studio",
				Message:   "Invoice INV-2025-1102 marked as overdue.",
			},
		},
	}
}

// Tenants returns the tenant catalogue.
func (c *Catalog) Tenants() []domain.Tenant {
	now := c.utcNow()
	return []domain.Tenant{
		{
			ID:         "tn-001",
			Name:       "Nexylomedia HQ",
			Plan:       "Enterprise",
			Users:      32,
			Status:     domain.TenantStatusActive,
			LastActive: now.Add(-10 * time.Minute),
			Usage:      domain.TenantUsage{API: 12000, Automations: 98, AITokens: 82000},
			RenewsAt:   ptr(domain.DateOf(now.AddDate(0, 0, 18))),
		},
		{
			ID:         "tn-002",
			Name:       "Acme Retail",
			Plan:       "Growth",
			Users:      14,
			Status:     domain.TenantStatusActive,
			LastActive: now.Add(-47 * time.Minute),
			Usage:      domain.TenantUsage{API: 5200, Automations: 32, AITokens: 21000},
			RenewsAt:   ptr(domain.DateOf(now.AddDate(0, 0, 25))),
		},
		{
			ID:         "tn-003",
			Name:       "Signal Studio",
			Plan:       "Starter",
			Users:      6,
			Status:     domain.TenantStatusDelinquent,
			LastActive: now.Add(-8 * time.Hour),
			Usage:      domain.TenantUsage{API: 980, Automations: 5, AITokens: 1500},
		},
		{
			ID:          "tn-004",
			Name:        "Northwind Retail",
			Plan:        "Growth",
			Users:       3,
			Status:      domain.TenantStatusTrial,
			LastActive:  now.Add(-25 * time.Minute),
			Usage:       domain.TenantUsage{API: 140, Automations: 1, AITokens: 900},
			TrialEndsAt: ptr(now.AddDate(0, 0, 14)),
		},
	}
}

const (
	placeholderTenantName = "Sample Tenant"
	placeholderTenantPlan = "Enterprise"
)

// TenantDetail returns the drill-down view for tenantID.
// The id is echoed as given; unknown ids get placeholder identity fields.
func (c *Catalog) TenantDetail(tenantID string) domain.TenantDetail {
	now := c.utcNow()

	name, plan := placeholderTenantName, placeholderTenantPlan
	renewal := domain.DateOf(now.AddDate(0, 0, 18))
	for _, t := range c.Tenants() {
		if t.ID == tenantID {
			name, plan = t.Name, t.Plan
			if t.RenewsAt != nil {
				renewal = *t.RenewsAt
			}
			break
		}
	}

	return domain.TenantDetail{
		ID:          tenantID,
		Name:        name,
		Plan:        plan,
		PlanRenewal: renewal,
		Owner: domain.Owner{
			Name:  "Abhijeet Ghosh",
			Email: "abhijeet@nexylomedia.com",
		},
		Usage: map[string]domain.Quota{
			"api_calls":   {Used: 182_000, Limit: 250_000},
			"ai_tokens":   {Used: 120_000, Limit: 180_000},
			"automations": {Used: 430, Limit: 600},
		},
		Integrations: []domain.Integration{
			{Name: "Google PageSpeed", Status: domain.IntegrationConnected},
			{Name: "Gemini AI", Status: domain.IntegrationConnected},
			{Name: "Meta Ads", Status: domain.IntegrationDisconnected},
		},
		RecentActivity: []domain.TenantEvent{
			{Timestamp: now.Add(-2 * time.Hour), Message: "Campaign 'Holiday Promo' activated."},
			{Timestamp: now.Add(-6 * time.Hour), Message: "Lead import job completed (79 records)."},
		},
	}
}
