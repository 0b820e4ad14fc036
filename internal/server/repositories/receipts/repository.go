package receipts

import (
	"context"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, receipt *models.Receipt) (*models.Receipt, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Receipt, error)
}
