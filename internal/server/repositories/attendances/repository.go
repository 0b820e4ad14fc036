package attendances

import (
	"context"
	"time"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	ListByClassAndDate(ctx context.Context, classID string, date time.Time) ([]*models.Attendance, error)
}
