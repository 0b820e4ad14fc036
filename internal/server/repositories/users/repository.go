package users

import (
	"context"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

// Repository is the store seam consumed by the credential verifier and the
// seeding service. Lookup is by exact, case-sensitive username; the backing
// store enforces username uniqueness.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteAll(ctx context.Context) error
}
