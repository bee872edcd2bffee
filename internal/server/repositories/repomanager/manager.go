// Package repomanager hands out repository instances bound to a connection
// handle, so services can run every repository of one logical operation over
// the same scoped connection (or transaction).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/server/repositories/customers"
	"github.com/obolotin/ledgerboard/internal/server/repositories/dashboard"
	"github.com/obolotin/ledgerboard/internal/server/repositories/invoices"
	"github.com/obolotin/ledgerboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Customers(db dbx.DBTX) customers.Repository
	Invoices(db dbx.DBTX) invoices.Repository
	Dashboard(db dbx.DBTX) dashboard.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
