package students

import (
	"context"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	AssignClass(ctx context.Context, studentID, classID string) error
}
