package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestFetchRevenue(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"month", "revenue"}).
		AddRow("Jan", int64(200000)).
		AddRow("Feb", int64(180000))
	mock.ExpectQuery(`^SELECT\s+month,\s*revenue\s+FROM\s+revenue$`).WillReturnRows(rows)

	got, err := repo.FetchRevenue(context.Background())
	if err != nil {
		t.Fatalf("FetchRevenue error: %v", err)
	}
	if len(got) != 2 || got[0].Month != "Jan" || got[1].RevenueCents != 180000 {
		t.Fatalf("unexpected revenue rows: %+v", got)
	}
}

func TestFetchLatestInvoices_BindsLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+invoices\.id,\s*invoices\.amount,\s*customers\.name,\s*customers\.email,\s*customers\.image_url\s+FROM\s+invoices\s+JOIN\s+customers.*ORDER\s+BY\s+invoices\.date\s+DESC\s+LIMIT\s+\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "amount", "name", "email", "image_url"}).
		AddRow("inv-9", int64(34577), "Amy", "amy@mail.test", "/customers/amy.png")
	mock.ExpectQuery(q).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	got, err := repo.FetchLatestInvoices(context.Background(), 5)
	if err != nil {
		t.Fatalf("FetchLatestInvoices error: %v", err)
	}
	if len(got) != 1 || got[0].AmountCents != 34577 || got[0].CustomerName != "Amy" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestFetchCardTotals_RunsAllThreeQueries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT\s+COUNT\(\*\)\s+FROM\s+invoices$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(`^SELECT\s+COUNT\(\*\)\s+FROM\s+customers$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery(`(?s)^SELECT\s+COALESCE\(SUM\(CASE\s+WHEN\s+status\s*=\s*'paid'.*FROM\s+invoices\s*$`).
		WillReturnRows(sqlmock.NewRows([]string{"paid", "pending"}).AddRow(int64(11800), int64(12500)))

	got, err := repo.FetchCardTotals(context.Background())
	if err != nil {
		t.Fatalf("FetchCardTotals error: %v", err)
	}
	if got.NumberOfInvoices != 12 || got.NumberOfCustomers != 6 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.PaidCents != 11800 || got.PendingCents != 12500 {
		t.Fatalf("unexpected sums: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFetchCardTotals_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT\s+COUNT\(\*\)\s+FROM\s+invoices$`).
		WillReturnError(errors.New("db down"))

	_, err := repo.FetchCardTotals(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
