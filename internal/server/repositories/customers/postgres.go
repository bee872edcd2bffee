package customers

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

func (r *PostgresRepository) FetchAll(ctx context.Context) ([]models.CustomerField, error) {
	query :=
		`SELECT id, name FROM customers
		 ORDER BY name ASC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.CustomerField
	for rows.Next() {
		var c models.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FetchFiltered(ctx context.Context, filter string) ([]models.CustomerTotals, error) {
	// COALESCE keeps customers without invoices at zero instead of NULL.
	query := `SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE
			customers.name ILIKE '%' || $1 || '%' OR
			customers.email ILIKE '%' || $1 || '%'
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`

	rows, err := r.db.QueryContext(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.CustomerTotals
	for rows.Next() {
		var c models.CustomerTotals
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL,
			&c.TotalInvoices, &c.PendingCents, &c.PaidCents)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create inserts a customer row; used by the seeder only.
func (r *PostgresRepository) Create(ctx context.Context, customer *models.Customer) error {
	query :=
		`INSERT INTO customers (id, name, email, image_url)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.ImageURL)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
