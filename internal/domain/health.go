package domain

import "time"

// ServiceStatus is the operating state of a platform service.
type ServiceStatus string

const (
	ServiceOperational ServiceStatus = "operational"
	ServiceDegraded    ServiceStatus = "degraded"
	ServiceOutage      ServiceStatus = "outage"
)

// IncidentSeverity ranks an incident.
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

// ServiceReport describes one platform service.
// Only the detail fields relevant to the service are set.
type ServiceReport struct {
	Name           string        `json:"name"`
	Status         ServiceStatus `json:"status"`
	StatusDetail   string        `json:"status_detail,omitempty"`
	ResponseTimeMS *int          `json:"response_time_ms,omitempty"`
	ActiveJobs     *int          `json:"active_jobs,omitempty"`
}

// Incident is an open operational incident.
type Incident struct {
	ID       string           `json:"id"`
	Severity IncidentSeverity `json:"severity"`
	Title    string           `json:"title"`
	OpenedAt time.Time        `json:"opened_at"`
}

// SystemHealthReport lists service states and open incidents.
type SystemHealthReport struct {
	Services  []ServiceReport `json:"services"`
	Incidents []Incident      `json:"incidents"`
}
