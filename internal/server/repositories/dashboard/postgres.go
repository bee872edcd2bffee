package dashboard

import (
	"context"
	"fmt"

	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	query := `SELECT month, revenue FROM revenue`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Revenue
	for rows.Next() {
		var rev models.Revenue
		if err := rows.Scan(&rev.Month, &rev.RevenueCents); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FetchLatestInvoices(ctx context.Context, limit int64) ([]models.LatestInvoiceRaw, error) {
	query :=
		`SELECT invoices.id, invoices.amount, customers.name, customers.email, customers.image_url
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 ORDER BY invoices.date DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.LatestInvoiceRaw
	for rows.Next() {
		var inv models.LatestInvoiceRaw
		err := rows.Scan(&inv.ID, &inv.AmountCents,
			&inv.CustomerName, &inv.CustomerEmail, &inv.CustomerImageURL)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// FetchCardTotals runs the three card queries sequentially on the operation's
// connection.
func (r *PostgresRepository) FetchCardTotals(ctx context.Context) (*models.CardTotals, error) {
	totals := &models.CardTotals{}

	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).
		Scan(&totals.NumberOfInvoices)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).
		Scan(&totals.NumberOfCustomers)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT
		 COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
		 COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		 FROM invoices
		 `

	err = r.db.QueryRowContext(ctx, query).Scan(&totals.PaidCents, &totals.PendingCents)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return totals, nil
}

func (r *PostgresRepository) InsertRevenue(ctx context.Context, rev *models.Revenue) error {
	query :=
		`INSERT INTO revenue (month, revenue)
		 VALUES ($1, $2)
		 ON CONFLICT (month) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, rev.Month, rev.RevenueCents); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
