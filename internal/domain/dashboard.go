package domain

import "time"

// Trend is the direction a KPI moved since the previous period.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// KPI is a single headline figure on the dashboard.
// Value is either a number or a preformatted string such as "68k".
type KPI struct {
	Label  string `json:"label"`
	Value  any    `json:"value"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
}

// ServiceHealth describes one entry of the dashboard system-health map.
// Heartbeat services report Status and LastHeartbeat; quota services report Used and Limit.
type ServiceHealth struct {
	Status        ServiceStatus `json:"status,omitempty"`
	LastHeartbeat *time.Time    `json:"last_heartbeat,omitempty"`
	Used          *int64        `json:"used,omitempty"`
	Limit         *int64        `json:"limit,omitempty"`
}

// Activity is a platform event shown in the dashboard feed.
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Tenant    string    `json:"tenant"`
	Message   string    `json:"message"`
}

// DashboardSummary is the super-admin landing payload.
type DashboardSummary struct {
	KPIs           []KPI                    `json:"kpis"`
	SystemHealth   map[string]ServiceHealth `json:"system_health"`
	RecentActivity []Activity               `json:"recent_activity"`
}
