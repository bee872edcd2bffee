// Package services implements the operations the dashboard calls: credential
// verification, invoice and customer reads, and the invoice mutations. Every
// operation runs inside exactly one connection scope; database failures are
// logged with their detail here and leave the package only as generic
// "Database Error" values.
package services

import (
	"context"

	"github.com/obolotin/ledgerboard/internal/dbx"
)

// ConnProvider supplies the scoped connection each operation runs in.
// *db.Provider is the production implementation.
type ConnProvider interface {
	Do(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error
}
