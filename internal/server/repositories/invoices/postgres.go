package invoices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/obolotin/ledgerboard/internal/common"
	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/money"
	"github.com/obolotin/ledgerboard/internal/server/models"
)

// dateLayout is how calendar dates are rendered for the DATE column.
const dateLayout = "2006-01-02"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// filterPredicate matches the filter text as a case-insensitive substring of
// any displayed column. The text is always a bound parameter; '%' wrapping
// happens inside the statement so the engine never sees it as SQL.
const filterPredicate = `
		customers.name ILIKE '%' || $1 || '%' OR
		customers.email ILIKE '%' || $1 || '%' OR
		invoices.amount::text ILIKE '%' || $1 || '%' OR
		invoices.date::text ILIKE '%' || $1 || '%' OR
		invoices.status ILIKE '%' || $1 || '%'`

func (r *PostgresRepository) ListFiltered(ctx context.Context, filter string, limit, offset int64) ([]models.InvoiceRow, error) {
	query := `SELECT
			invoices.id,
			invoices.amount,
			invoices.date,
			invoices.status,
			customers.name,
			customers.email,
			customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + filterPredicate + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.InvoiceRow
	for rows.Next() {
		var row models.InvoiceRow
		err := rows.Scan(&row.ID, &row.AmountCents, &row.Date, &row.Status,
			&row.CustomerName, &row.CustomerEmail, &row.CustomerImageURL)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountFiltered(ctx context.Context, filter string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + filterPredicate

	var count int64
	if err := r.db.QueryRowContext(ctx, query, filter).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.InvoiceForm, error) {
	query :=
		`SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status
		 FROM invoices
		 WHERE invoices.id = $1
		 `

	form := &models.InvoiceForm{}
	var cents int64
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&form.ID, &form.CustomerID, &cents, &form.Status)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	form.Amount = money.FromCents(cents)
	return form, nil
}

func (r *PostgresRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	query :=
		`INSERT INTO invoices (id, customer_id, amount, status, date)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status,
		invoice.Date.Format(dateLayout))

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, invoice *models.Invoice) (int64, error) {
	query :=
		`UPDATE invoices
		 SET customer_id = $1, amount = $2, status = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query,
		invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
