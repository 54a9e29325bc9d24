package catalog

import (
	"time"

	"github.com/nexylomedia/superadmin-api/internal/domain"
)

// FeatureFlags returns the flag matrix keyed by flag key.
func (c *Catalog) FeatureFlags() map[string]domain.FeatureFlag {
	return map[string]domain.FeatureFlag{
		"seo_autopilot":       {Label: "SEO Autopilot", TenantsEnabled: []string{"tn-001", "tn-002"}},
		"marketing_research":  {Label: "Market Research AI", TenantsEnabled: []string{"tn-001"}},
		"prospect_radar":      {Label: "Prospect Radar", TenantsEnabled: []string{"tn-002", "tn-003"}},
		"campaign_management": {Label: "Campaign Management", TenantsEnabled: []string{}},
	}
}

// AuditLogs returns recent operator actions, newest first.
func (c *Catalog) AuditLogs() []domain.AuditLogEntry {
	now := c.utcNow()
	return []domain.AuditLogEntry{
		{
			Timestamp: now.Add(-12 * time.Minute),
			Actor:     "abhijeet@nexylomedia.com",
			Tenant:    "tn-001",
			Action:    "feature_flag.enable",
			Metadata:  map[string]string{"flag": "marketing_research"},
		},
		{
			Timestamp: now.Add(-3 * time.Hour),
			Actor:     "support@platform.io",
			Tenant:    "tn-003",
			Action:    "tenant.impersonate",
			Metadata:  map[string]string{"reason": "Investigate automation failure"},
		},
		{
			Timestamp: now.Add(-26 * time.Hour),
			Actor:     "automation@platform.io",
			Action:    "plan.price_sync",
		},
	}
}
