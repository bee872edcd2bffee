package models

import "time"

// Invoice statuses. The status column only ever holds one of these.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// Invoice is the stored record. Amount is always integer cents; Date is a
// calendar day (time-of-day is dropped on insert) and immutable after creation.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string
	Date        time.Time
}

// InvoiceRow is a filtered-listing row joining invoice and customer columns.
type InvoiceRow struct {
	ID               string
	AmountCents      int64
	Date             time.Time
	Status           string
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}

// InvoiceForm is the edit-form projection of a single invoice. Amount is in
// decimal currency units for display, converted at the repository boundary.
type InvoiceForm struct {
	ID         string
	CustomerID string
	Amount     float64
	Status     string
}

// LatestInvoiceRaw is the joined dashboard row as read from the store,
// amount still in cents.
type LatestInvoiceRaw struct {
	ID               string
	AmountCents      int64
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}

// LatestInvoice is a dashboard listing row with a display-formatted amount.
type LatestInvoice struct {
	ID               string
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
	Amount           string
}
