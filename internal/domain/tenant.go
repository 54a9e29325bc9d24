package domain

import "time"

// TenantStatus represents the account state of a tenant.
type TenantStatus string

const (
	TenantStatusActive     TenantStatus = "active"
	TenantStatusTrial      TenantStatus = "trial"
	TenantStatusDelinquent TenantStatus = "delinquent"
)

// TenantUsage holds the usage counters shown in the tenant list.
type TenantUsage struct {
	API         int64 `json:"api"`
	Automations int64 `json:"automations"`
	AITokens    int64 `json:"ai_tokens"`
}

// Tenant represents a customer organization in the tenant catalogue.
type Tenant struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Plan        string       `json:"plan"`
	Users       int          `json:"users"`
	Status      TenantStatus `json:"status"`
	LastActive  time.Time    `json:"last_active"`
	Usage       TenantUsage  `json:"usage"`
	TrialEndsAt *time.Time   `json:"trial_ends_at,omitempty"`
	RenewsAt    *Date        `json:"renews_at,omitempty"`
}

// Owner is the primary contact of a tenant.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Quota pairs a consumed amount with its plan limit.
type Quota struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

// IntegrationStatus is the connection state of a third-party integration.
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationPending      IntegrationStatus = "pending"
)

// Integration is a third-party service connected to a tenant.
type Integration struct {
	Name   string            `json:"name"`
	Status IntegrationStatus `json:"status"`
}

// TenantEvent is an entry in a tenant's recent activity log.
type TenantEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// TenantDetail is the drill-down view of a single tenant.
type TenantDetail struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Plan           string           `json:"plan"`
	PlanRenewal    Date             `json:"plan_renewal"`
	Owner          Owner            `json:"owner"`
	Usage          map[string]Quota `json:"usage"`
	Integrations   []Integration    `json:"integrations"`
	RecentActivity []TenantEvent    `json:"recent_activity"`
}
