package catalog

import (
	"time"

	"github.com/nexylomedia/superadmin-api/internal/domain"
)

// SystemHealth returns service states and open incidents.
func (c *Catalog) SystemHealth() domain.SystemHealthReport {
	now := c.utcNow()
	return domain.SystemHealthReport{
		Services: []domain.ServiceReport{
			{Name: "Admin API", Status: domain.ServiceOperational, ResponseTimeMS: ptr(142)},
			{Name: "n8n Workflow Engine", Status: domain.ServiceOperational, ActiveJobs: ptr(5)},
			{Name: "SQL Database", Status: domain.ServiceOperational, StatusDetail: "All replicas healthy"},
			{Name: "Notification Worker", Status: domain.ServiceDegraded, StatusDetail: "Retry queue building up"},
		},
		Incidents: []domain.Incident{
			{
				ID:       "INC-5562",
				Severity: domain.SeverityMedium,
				Title:    "Notification worker backlog",
				OpenedAt: now.Add(-4 * time.Hour),
			},
		},
	}
}
