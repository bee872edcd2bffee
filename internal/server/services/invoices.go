package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/obolotin/ledgerboard/internal/common"
	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/logging"
	"github.com/obolotin/ledgerboard/internal/money"
	"github.com/obolotin/ledgerboard/internal/server/cache"
	"github.com/obolotin/ledgerboard/internal/server/models"
	"github.com/obolotin/ledgerboard/internal/server/repositories/repomanager"
)

// ItemsPerPage is the fixed page size of the invoice listing.
const ItemsPerPage = 6

// InvoiceListPath is the listing view mutations invalidate and navigate
// back to.
const InvoiceListPath = "/dashboard/invoices"

// InvoiceInput is the declarative schema for create and update. It is checked
// in full before any database work.
type InvoiceInput struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"required,gt=0"`
	Status     string  `validate:"required,oneof=paid pending"`
}

// MutationResult tells the caller what to signal after a successful write.
// RedirectTo is empty for deletes, which are issued from the listing itself.
type MutationResult struct {
	RedirectTo string
}

type InvoiceService struct {
	provider    ConnProvider
	repos       repomanager.RepositoryManager
	invalidator cache.Invalidator
	logger      logging.Logger
	validate    *validator.Validate

	// now is a seam for tests; invoices are dated with the server's
	// current day.
	now func() time.Time
}

func NewInvoiceService(provider ConnProvider, repos repomanager.RepositoryManager, invalidator cache.Invalidator, logger logging.Logger) *InvoiceService {
	return &InvoiceService{
		provider:    provider,
		repos:       repos,
		invalidator: invalidator,
		logger:      logger,
		validate:    validator.New(),
		now:         time.Now,
	}
}

// ListInvoices returns one page of the filtered listing. Page numbers are
// 1-indexed; a page past the end yields an empty slice, not an error.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter string, page int64) ([]models.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage

	var rows []models.InvoiceRow
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		rows, err = s.repos.Invoices(conn).ListFiltered(ctx, filter, ItemsPerPage, offset)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "invoice listing failed", "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch Invoices.", common.ErrorDatabase)
	}

	return rows, nil
}

// CountInvoicePages returns the number of listing pages for a filter,
// i.e. ceil(matches / ItemsPerPage).
func (s *InvoiceService) CountInvoicePages(ctx context.Context, filter string) (int64, error) {
	var count int64
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		count, err = s.repos.Invoices(conn).CountFiltered(ctx, filter)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "invoice count failed", "err", err)
		return 0, fmt.Errorf("%w: Failed to Fetch Total Number of Invoices.", common.ErrorDatabase)
	}

	return (count + ItemsPerPage - 1) / ItemsPerPage, nil
}

// GetInvoiceByID returns the edit form for one invoice. A missing id is
// common.ErrorNotFound, a distinct outcome rather than a database error.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (*models.InvoiceForm, error) {
	var form *models.InvoiceForm
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		form, err = s.repos.Invoices(conn).GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "invoice fetch failed", "invoice_id", id, "err", err)
		return nil, fmt.Errorf("%w: Failed to Fetch Invoice.", common.ErrorDatabase)
	}

	return form, nil
}

// CreateInvoice validates the input, stores the invoice with the amount in
// cents and the date set to today, and signals the listing collaborators.
func (s *InvoiceService) CreateInvoice(ctx context.Context, in InvoiceInput) (*MutationResult, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:          uuid.NewString(),
		CustomerID:  in.CustomerID,
		AmountCents: money.ToCents(in.Amount),
		Status:      in.Status,
		Date:        s.now().UTC(),
	}

	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		return s.repos.Invoices(conn).Create(ctx, invoice)
	})
	if err != nil {
		s.logger.Error(ctx, "invoice insert failed", "invoice_id", invoice.ID, "err", err)
		return nil, fmt.Errorf("%w: Failed to Create Invoice.", common.ErrorDatabase)
	}

	s.markListingStale(ctx)
	return &MutationResult{RedirectTo: InvoiceListPath}, nil
}

// UpdateInvoice rewrites the customer, amount, and status of an invoice.
// Date and id stay untouched. An id that matches no row still succeeds;
// concurrent updates to the same id race at the storage layer and resolve
// last-write-wins under the database's default isolation.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, in InvoiceInput) (*MutationResult, error) {
	if id == "" {
		return nil, &common.ValidationError{Fields: map[string]string{"ID": "is required"}}
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:          id,
		CustomerID:  in.CustomerID,
		AmountCents: money.ToCents(in.Amount),
		Status:      in.Status,
	}

	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		_, err := s.repos.Invoices(conn).Update(ctx, invoice)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "invoice update failed", "invoice_id", id, "err", err)
		return nil, fmt.Errorf("%w: Failed to Edit Invoice.", common.ErrorDatabase)
	}

	s.markListingStale(ctx)
	return &MutationResult{RedirectTo: InvoiceListPath}, nil
}

// DeleteInvoice removes an invoice. Deleting an unknown id succeeds.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) (*MutationResult, error) {
	err := s.provider.Do(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		return s.repos.Invoices(conn).Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error(ctx, "invoice delete failed", "invoice_id", id, "err", err)
		return nil, fmt.Errorf("%w: Failed to Delete Invoice.", common.ErrorDatabase)
	}

	s.markListingStale(ctx)
	return &MutationResult{}, nil
}

func (s *InvoiceService) markListingStale(ctx context.Context) {
	if err := s.invalidator.Invalidate(ctx, InvoiceListPath); err != nil {
		s.logger.Warn(ctx, "cache invalidation failed", "path", InvoiceListPath, "err", err)
	}
}

func (s *InvoiceService) validateInput(in InvoiceInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &common.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than 0"
	case "oneof":
		return "must be one of: paid, pending"
	default:
		return "is invalid"
	}
}
