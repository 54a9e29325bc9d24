package domain

import "time"

// FeatureFlag gates a capability per tenant.
type FeatureFlag struct {
	Label          string   `json:"label"`
	TenantsEnabled []string `json:"tenants_enabled"`
}

// AuditLogEntry records an operator action.
type AuditLogEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Actor     string            `json:"actor"`
	Tenant    string            `json:"tenant,omitempty"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
