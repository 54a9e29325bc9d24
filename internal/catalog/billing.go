package catalog

import (
	"fmt"

	"github.com/nexylomedia/superadmin-api/internal/domain"
)

// Plans returns the subscription plan catalogue.
func (c *Catalog) Plans() []domain.Plan {
	return []domain.Plan{
		{Key: "starter", Name: "Starter", Price: 49, Tenants: 9},
		{Key: "growth", Name: "Growth", Price: 149, Tenants: 12},
		{Key: "enterprise", Name: "Enterprise", Price: 399, Tenants: 7},
	}
}

// Plan returns the plan with the given key.
func (c *Catalog) Plan(key string) (domain.Plan, error) {
	for _, p := range c.Plans() {
		if p.Key == key {
			return p, nil
		}
	}
	return domain.Plan{}, fmt.Errorf("plan %q: %w", key, domain.ErrPlanNotFound)
}

// Billing returns the plan catalogue together with recent invoices.
func (c *Catalog) Billing() domain.BillingOverview {
	now := c.utcNow()
	return domain.BillingOverview{
		Plans: c.Plans(),
		Invoices: []domain.Invoice{
			{
				ID:       "INV-2025-1102",
				Tenant:   "Signal Studio",
				Amount:   399,
				Currency: "USD",
				Status:   domain.InvoiceStatusOverdue,
				IssuedAt: domain.DateOf(now.AddDate(0, 0, -21)),
				DueAt:    domain.DateOf(now.AddDate(0, 0, -7)),
			},
			{
				ID:       "INV-2025-1107",
				Tenant:   "Acme Retail",
				Amount:   149,
				Currency: "USD",
				Status:   domain.InvoiceStatusPaid,
				IssuedAt: domain.DateOf(now.AddDate(0, 0, -5)),
				DueAt:    domain.DateOf(now.AddDate(0, 0, 25)),
			},
			{
				ID:       "INV-2025-1111",
				Tenant:   "Nexylomedia HQ",
				Amount:   399,
				Currency: "USD",
				Status:   domain.InvoiceStatusOpen,
				IssuedAt: domain.DateOf(now.AddDate(0, 0, -2)),
				DueAt:    domain.DateOf(now.AddDate(0, 0, 28)),
			},
		},
	}
}
