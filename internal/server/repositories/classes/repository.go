package classes

import (
	"context"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, class *models.Class) (*models.Class, error)
	GetByID(ctx context.Context, id string) (*models.Class, error)
	List(ctx context.Context) ([]*models.Class, error)
}
