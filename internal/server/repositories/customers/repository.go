package customers

import (
	"context"

	"github.com/obolotin/ledgerboard/internal/server/models"
)

type Repository interface {
	// FetchAll returns every customer's id and name, ordered by name.
	FetchAll(ctx context.Context) ([]models.CustomerField, error)

	// FetchFiltered returns the aggregated customers table (invoice count,
	// pending and paid totals in cents) for customers whose name or email
	// contains the filter text, ordered by name.
	FetchFiltered(ctx context.Context, filter string) ([]models.CustomerTotals, error)

	Create(ctx context.Context, customer *models.Customer) error
}
