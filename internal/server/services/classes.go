package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
)

// ClassService manages training groups and their coach assignment.
type ClassService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClassService(db *sql.DB, m repomanager.RepositoryManager) *ClassService {
	return &ClassService{db: db, repomanager: m}
}

// Create stores a new class. The coach must be an existing user with the
// coach role.
func (s *ClassService) Create(ctx context.Context, class *models.Class, coachUsername string) (*models.Class, error) {
	if class.Name == "" || coachUsername == "" {
		return nil, common.ErrorInvalidRequest
	}

	coach, err := s.repomanager.Users(s.db).GetByUsername(ctx, coachUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorStoreUnavailable
	}
	if coach.Role != models.RoleCoach && coach.Role != models.RoleAdmin {
		return nil, common.ErrorInvalidRequest
	}

	class.CoachID = coach.ID

	created, err := s.repomanager.Classes(s.db).Create(ctx, class)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return created, nil
}

func (s *ClassService) List(ctx context.Context) ([]*models.Class, error) {
	result, err := s.repomanager.Classes(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return result, nil
}
