package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/logging"
	"github.com/obolotin/ledgerboard/internal/server/models"
	customersrepo "github.com/obolotin/ledgerboard/internal/server/repositories/customers"
	dashboardrepo "github.com/obolotin/ledgerboard/internal/server/repositories/dashboard"
	invoicesrepo "github.com/obolotin/ledgerboard/internal/server/repositories/invoices"
	usersrepo "github.com/obolotin/ledgerboard/internal/server/repositories/users"
)

// --- shared fakes ---

func newTestLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeProvider stands in for db.Provider. When err is set, the operation
// fails before fn runs, which is how a connection failure presents.
type fakeProvider struct {
	err   error
	calls int
}

func (p *fakeProvider) Do(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	p.calls++
	if p.err != nil {
		return p.err
	}
	return fn(ctx, nil)
}

type fakeUsersRepo struct {
	getOut *models.User
	getErr error

	gotEmail string
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.gotEmail = email
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error { return nil }

type fakeInvoicesRepo struct {
	listOut []models.InvoiceRow
	listErr error

	countOut int64
	countErr error

	getOut *models.InvoiceForm
	getErr error

	createErr error
	updateOut int64
	updateErr error
	deleteErr error

	gotFilter  string
	gotLimit   int64
	gotOffset  int64
	gotInvoice *models.Invoice
	gotID      string
}

func (f *fakeInvoicesRepo) ListFiltered(ctx context.Context, filter string, limit, offset int64) ([]models.InvoiceRow, error) {
	f.gotFilter, f.gotLimit, f.gotOffset = filter, limit, offset
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeInvoicesRepo) CountFiltered(ctx context.Context, filter string) (int64, error) {
	f.gotFilter = filter
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countOut, nil
}

func (f *fakeInvoicesRepo) GetByID(ctx context.Context, id string) (*models.InvoiceForm, error) {
	f.gotID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeInvoicesRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	f.gotInvoice = invoice
	return f.createErr
}

func (f *fakeInvoicesRepo) Update(ctx context.Context, invoice *models.Invoice) (int64, error) {
	f.gotInvoice = invoice
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeInvoicesRepo) Delete(ctx context.Context, id string) error {
	f.gotID = id
	return f.deleteErr
}

type fakeCustomersRepo struct {
	allOut []models.CustomerField
	allErr error

	filteredOut []models.CustomerTotals
	filteredErr error

	gotFilter string
}

func (f *fakeCustomersRepo) FetchAll(ctx context.Context) ([]models.CustomerField, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.allOut, nil
}

func (f *fakeCustomersRepo) FetchFiltered(ctx context.Context, filter string) ([]models.CustomerTotals, error) {
	f.gotFilter = filter
	if f.filteredErr != nil {
		return nil, f.filteredErr
	}
	return f.filteredOut, nil
}

func (f *fakeCustomersRepo) Create(ctx context.Context, c *models.Customer) error { return nil }

type fakeDashboardRepo struct {
	revenueOut []models.Revenue
	revenueErr error

	latestOut []models.LatestInvoiceRaw
	latestErr error

	totalsOut *models.CardTotals
	totalsErr error

	gotLimit int64
}

func (f *fakeDashboardRepo) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	if f.revenueErr != nil {
		return nil, f.revenueErr
	}
	return f.revenueOut, nil
}

func (f *fakeDashboardRepo) FetchLatestInvoices(ctx context.Context, limit int64) ([]models.LatestInvoiceRaw, error) {
	f.gotLimit = limit
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	return f.latestOut, nil
}

func (f *fakeDashboardRepo) FetchCardTotals(ctx context.Context) (*models.CardTotals, error) {
	if f.totalsErr != nil {
		return nil, f.totalsErr
	}
	return f.totalsOut, nil
}

func (f *fakeDashboardRepo) InsertRevenue(ctx context.Context, rev *models.Revenue) error {
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	i *fakeInvoicesRepo
	c *fakeCustomersRepo
	d *fakeDashboardRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Invoices(db dbx.DBTX) invoicesrepo.Repository    { return m.i }
func (m *fakeRepoManager) Customers(db dbx.DBTX) customersrepo.Repository  { return m.c }
func (m *fakeRepoManager) Dashboard(db dbx.DBTX) dashboardrepo.Repository  { return m.d }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }

// fakeInvalidator records cache-invalidation signals.
type fakeInvalidator struct {
	paths []string
	err   error
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}
