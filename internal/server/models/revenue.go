package models

// Revenue is one row of the monthly revenue reporting table.
type Revenue struct {
	Month        string
	RevenueCents int64
}

// CardTotals is the raw dashboard card aggregation, amounts in cents.
type CardTotals struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	PaidCents         int64
	PendingCents      int64
}

// CardSummary is CardTotals with display-formatted amounts.
type CardSummary struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         string
	TotalPending      string
}

// DashboardData bundles everything the dashboard landing page renders.
type DashboardData struct {
	Revenue        []Revenue
	LatestInvoices []LatestInvoice
	Cards          CardSummary
}
