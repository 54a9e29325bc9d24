package domain

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOpen    InvoiceStatus = "open"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Plan is a subscription tier and the number of tenants on it.
type Plan struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Tenants int     `json:"tenants"`
}

// Invoice is a billing record for a tenant.
type Invoice struct {
	ID       string        `json:"id"`
	Tenant   string        `json:"tenant"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Status   InvoiceStatus `json:"status"`
	IssuedAt Date          `json:"issued_at"`
	DueAt    Date          `json:"due_at"`
}

// BillingOverview combines the plan catalogue with recent invoices.
type BillingOverview struct {
	Plans    []Plan    `json:"plans"`
	Invoices []Invoice `json:"invoices"`
}
