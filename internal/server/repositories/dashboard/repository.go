package dashboard

import (
	"context"

	"github.com/obolotin/ledgerboard/internal/server/models"
)

type Repository interface {
	// FetchRevenue returns every row of the monthly revenue table.
	FetchRevenue(ctx context.Context) ([]models.Revenue, error)

	// FetchLatestInvoices returns the most recent invoices joined with their
	// customers, amounts in cents.
	FetchLatestInvoices(ctx context.Context, limit int64) ([]models.LatestInvoiceRaw, error)

	// FetchCardTotals returns the invoice/customer counts and the paid and
	// pending sums in cents.
	FetchCardTotals(ctx context.Context) (*models.CardTotals, error)

	// InsertRevenue records one monthly revenue row; used by the seeder only.
	InsertRevenue(ctx context.Context, rev *models.Revenue) error
}
