package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
)

// StudentService manages student records and their class assignment.
type StudentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStudentService(db *sql.DB, m repomanager.RepositoryManager) *StudentService {
	return &StudentService{db: db, repomanager: m}
}

func (s *StudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.Name == "" {
		return nil, common.ErrorInvalidRequest
	}

	created, err := s.repomanager.Students(s.db).Create(ctx, student)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return created, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	if id == "" {
		return nil, common.ErrorInvalidRequest
	}

	student, err := s.repomanager.Students(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorStoreUnavailable
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	result, err := s.repomanager.Students(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return result, nil
}

func (s *StudentService) Update(ctx context.Context, student *models.Student) error {
	if student.ID == "" || student.Name == "" {
		return common.ErrorInvalidRequest
	}

	err := s.repomanager.Students(s.db).Update(ctx, student)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorStoreUnavailable
	}
	return nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrorInvalidRequest
	}

	err := s.repomanager.Students(s.db).Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorStoreUnavailable
	}
	return nil
}

// AssignClass moves a student into a class after checking the class exists.
func (s *StudentService) AssignClass(ctx context.Context, studentID, classID string) error {
	if studentID == "" || classID == "" {
		return common.ErrorInvalidRequest
	}

	if _, err := s.repomanager.Classes(s.db).GetByID(ctx, classID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorStoreUnavailable
	}

	err := s.repomanager.Students(s.db).AssignClass(ctx, studentID, classID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorStoreUnavailable
	}
	return nil
}
