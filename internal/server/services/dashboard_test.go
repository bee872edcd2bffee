package services

import (
	"context"
	"errors"
	"testing"

	"github.com/obolotin/ledgerboard/internal/common"
	"github.com/obolotin/ledgerboard/internal/server/models"
)

func newDashboardService(t *testing.T, repo *fakeDashboardRepo) *DashboardService {
	t.Helper()
	return NewDashboardService(&fakeProvider{}, &fakeRepoManager{d: repo}, newTestLogger(t))
}

func TestFetchLatestInvoices_UsesLimitAndFormats(t *testing.T) {
	repo := &fakeDashboardRepo{latestOut: []models.LatestInvoiceRaw{{
		ID:           "inv-9",
		AmountCents:  34577,
		CustomerName: "Amy",
	}}}
	svc := newDashboardService(t, repo)

	got, err := svc.FetchLatestInvoices(context.Background())
	if err != nil {
		t.Fatalf("FetchLatestInvoices error: %v", err)
	}
	if repo.gotLimit != 5 {
		t.Fatalf("want limit 5, got %d", repo.gotLimit)
	}
	if len(got) != 1 || got[0].Amount != "$345.77" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestFetchCardSummary_FormatsTotals(t *testing.T) {
	repo := &fakeDashboardRepo{totalsOut: &models.CardTotals{
		NumberOfInvoices:  12,
		NumberOfCustomers: 6,
		PaidCents:         118000,
		PendingCents:      125000,
	}}
	svc := newDashboardService(t, repo)

	got, err := svc.FetchCardSummary(context.Background())
	if err != nil {
		t.Fatalf("FetchCardSummary error: %v", err)
	}
	if got.NumberOfInvoices != 12 || got.NumberOfCustomers != 6 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.TotalPaid != "$1,180.00" || got.TotalPending != "$1,250.00" {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestFetchDashboardData_BundlesEverything(t *testing.T) {
	repo := &fakeDashboardRepo{
		revenueOut: []models.Revenue{{Month: "Jan", RevenueCents: 200000}},
		latestOut:  []models.LatestInvoiceRaw{{ID: "inv-1", AmountCents: 1000}},
		totalsOut:  &models.CardTotals{NumberOfInvoices: 1, NumberOfCustomers: 1},
	}
	svc := newDashboardService(t, repo)

	got, err := svc.FetchDashboardData(context.Background())
	if err != nil {
		t.Fatalf("FetchDashboardData error: %v", err)
	}
	if len(got.Revenue) != 1 || len(got.LatestInvoices) != 1 || got.Cards.NumberOfInvoices != 1 {
		t.Fatalf("unexpected bundle: %+v", got)
	}
}

func TestFetchRevenue_DBErrorIsGeneric(t *testing.T) {
	repo := &fakeDashboardRepo{revenueErr: errors.New("timeout")}
	svc := newDashboardService(t, repo)

	_, err := svc.FetchRevenue(context.Background())
	if !errors.Is(err, common.ErrorDatabase) {
		t.Fatalf("want common.ErrorDatabase, got %v", err)
	}
	if got := err.Error(); got != "Database Error: Failed to Fetch Revenue Data." {
		t.Fatalf("unexpected message: %q", got)
	}
}
