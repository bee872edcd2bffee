package customers

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

func TestFetchAll_OrderedByName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name\s+FROM\s+customers\s+ORDER\s+BY\s+name\s+ASC\s*$`

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("c-1", "Amy").
		AddRow("c-2", "Lee")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Amy" || got[1].Name != "Lee" {
		t.Fatalf("unexpected customers: %+v", got)
	}
}

func TestFetchFiltered_AggregatesAndBindsFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT.*COUNT\(invoices\.id\).*COALESCE\(SUM\(CASE\s+WHEN\s+invoices\.status\s*=\s*'pending'.*FROM\s+customers\s+LEFT\s+JOIN\s+invoices.*GROUP\s+BY.*ORDER\s+BY\s+customers\.name\s+ASC$`

	rows := sqlmock.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
		AddRow("c-1", "Amy", "amy@mail.test", "/customers/amy.png", int64(3), int64(12500), int64(3000))
	mock.ExpectQuery(q).
		WithArgs("amy").
		WillReturnRows(rows)

	got, err := repo.FetchFiltered(context.Background(), "amy")
	if err != nil {
		t.Fatalf("FetchFiltered error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 row, got %d", len(got))
	}
	if got[0].TotalInvoices != 3 || got[0].PendingCents != 12500 || got[0].PaidCents != 3000 {
		t.Fatalf("unexpected totals: %+v", got[0])
	}
}

func TestFetchFiltered_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT.*LEFT\s+JOIN\s+invoices.*$`).
		WithArgs("x").
		WillReturnError(errors.New("db down"))

	_, err := repo.FetchFiltered(context.Background(), "x")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
