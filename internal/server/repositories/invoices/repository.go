package invoices

import (
	"context"

	"github.com/obolotin/ledgerboard/internal/server/models"
)

type Repository interface {
	// ListFiltered returns listing rows whose customer name, customer email,
	// amount, date, or status contains the filter text, ordered by date
	// descending.
	ListFiltered(ctx context.Context, filter string, limit, offset int64) ([]models.InvoiceRow, error)

	// CountFiltered returns the number of rows ListFiltered would match.
	CountFiltered(ctx context.Context, filter string) (int64, error)

	// GetByID returns the edit form for one invoice, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.InvoiceForm, error)

	Create(ctx context.Context, invoice *models.Invoice) error

	// Update rewrites the three mutable columns and reports how many rows
	// matched. Zero is not an error.
	Update(ctx context.Context, invoice *models.Invoice) (int64, error)

	// Delete removes an invoice; deleting an unknown id succeeds.
	Delete(ctx context.Context, id string) error
}
