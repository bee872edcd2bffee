package services

import (
	"context"
	"fmt"

	"github.com/obolotin/ledgerboard/internal/common"
	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/logging"
	"github.com/obolotin/ledgerboard/internal/money"
	"github.com/obolotin/ledgerboard/internal/server/models"
	"github.com/obolotin/ledgerboard/internal/server/repositories/repomanager"
)

type CustomerService struct {
	provider ConnProvider
	repos    repomanager.RepositoryManager
	logger   logging.Logger
}

func NewCustomerService(provider ConnProvider, repos repomanager.RepositoryManager, logger logging.Logger) *CustomerService {
	return &CustomerService{provider: provider, repos: repos, logger: logger}
}

// FetchCustomers returns every customer's id and name for select inputs.
func (s *CustomerService) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	var fields []models.CustomerField
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		fields, err = s.repos.Customers(conn).FetchAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "customer fetch failed", "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch All Customers.", common.ErrorDatabase)
	}

	return fields, nil
}

// FetchFilteredCustomers returns the customers table with invoice counts and
// display-formatted pending/paid totals.
func (s *CustomerService) FetchFilteredCustomers(ctx context.Context, filter string) ([]models.CustomerSummary, error) {
	var totals []models.CustomerTotals
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		totals, err = s.repos.Customers(conn).FetchFiltered(ctx, filter)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "customer table fetch failed", "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch Customer Table.", common.ErrorDatabase)
	}

	summaries := make([]models.CustomerSummary, 0, len(totals))
	for _, c := range totals {
		summaries = append(summaries, models.CustomerSummary{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  money.Format(c.PendingCents),
			TotalPaid:     money.Format(c.PaidCents),
		})
	}

	return summaries, nil
}
