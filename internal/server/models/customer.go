package models

type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerField is the minimal id/name pair used to populate select inputs.
type CustomerField struct {
	ID   string
	Name string
}

// CustomerTotals is the raw aggregation row for the customers table:
// totals are in cents, converted to display strings at the service boundary.
type CustomerTotals struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	PendingCents  int64
	PaidCents     int64
}

// CustomerSummary is CustomerTotals with display-formatted amounts.
type CustomerSummary struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  string
	TotalPaid     string
}
