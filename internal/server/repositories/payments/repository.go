package payments

import (
	"context"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Payment, error)
	ListByMonth(ctx context.Context, referenceMonth string) ([]*models.Payment, error)
}
