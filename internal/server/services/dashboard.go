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

// latestInvoicesLimit caps the dashboard's recent-invoices listing.
const latestInvoicesLimit = 5

type DashboardService struct {
	provider ConnProvider
	repos    repomanager.RepositoryManager
	logger   logging.Logger
}

func NewDashboardService(provider ConnProvider, repos repomanager.RepositoryManager, logger logging.Logger) *DashboardService {
	return &DashboardService{provider: provider, repos: repos, logger: logger}
}

// FetchRevenue returns the monthly revenue table. Read-only, no side effects.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		revenue, err = s.repos.Dashboard(conn).FetchRevenue(ctx)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "revenue fetch failed", "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch Revenue Data.", common.ErrorDatabase)
	}

	return revenue, nil
}

// FetchLatestInvoices returns the five most recent invoices with
// display-formatted amounts.
func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	var raw []models.LatestInvoiceRaw
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		raw, err = s.repos.Dashboard(conn).FetchLatestInvoices(ctx, latestInvoicesLimit)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "latest invoices fetch failed", "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch the Latest Invoices.", common.ErrorDatabase)
	}

	latest := make([]models.LatestInvoice, 0, len(raw))
	for _, inv := range raw {
		latest = append(latest, models.LatestInvoice{
			ID:               inv.ID,
			CustomerName:     inv.CustomerName,
			CustomerEmail:    inv.CustomerEmail,
			CustomerImageURL: inv.CustomerImageURL,
			Amount:           money.Format(inv.AmountCents),
		})
	}

	return latest, nil
}

// FetchCardSummary returns the dashboard card counts and formatted totals.
func (s *DashboardService) FetchCardSummary(ctx context.Context) (*models.CardSummary, error) {
	var totals *models.CardTotals
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		totals, err = s.repos.Dashboard(conn).FetchCardTotals(ctx)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "card summary fetch failed", "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch Card Data.", common.ErrorDatabase)
	}

	return &models.CardSummary{
		NumberOfInvoices:  totals.NumberOfInvoices,
		NumberOfCustomers: totals.NumberOfCustomers,
		TotalPaid:         money.Format(totals.PaidCents),
		TotalPending:      money.Format(totals.PendingCents),
	}, nil
}

// FetchDashboardData bundles everything the dashboard landing page needs.
func (s *DashboardService) FetchDashboardData(ctx context.Context) (*models.DashboardData, error) {
	revenue, err := s.FetchRevenue(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.FetchLatestInvoices(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.FetchCardSummary(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		Revenue:        revenue,
		LatestInvoices: latest,
		Cards:          *cards,
	}, nil
}
