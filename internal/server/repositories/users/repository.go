package users

import (
	"context"

	"github.com/obolotin/ledgerboard/internal/server/models"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
