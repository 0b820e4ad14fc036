package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
)

// AttendanceService records class check-ins.
type AttendanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAttendanceService(db *sql.DB, m repomanager.RepositoryManager) *AttendanceService {
	return &AttendanceService{db: db, repomanager: m}
}

// CheckIn records a student's presence in a class for a date. A repeated
// check-in for the same (student, class, date) returns ErrorAlreadyExists.
func (s *AttendanceService) CheckIn(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	if attendance.StudentID == "" || attendance.ClassID == "" || attendance.CheckedInBy == "" || attendance.Date.IsZero() {
		return nil, common.ErrorInvalidRequest
	}

	if _, err := s.repomanager.Students(s.db).GetByID(ctx, attendance.StudentID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorStoreUnavailable
	}

	created, err := s.repomanager.Attendances(s.db).Create(ctx, attendance)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorStoreUnavailable
	}
	return created, nil
}

func (s *AttendanceService) ListByClassAndDate(ctx context.Context, classID string, date time.Time) ([]*models.Attendance, error) {
	if classID == "" || date.IsZero() {
		return nil, common.ErrorInvalidRequest
	}

	result, err := s.repomanager.Attendances(s.db).ListByClassAndDate(ctx, classID, date)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return result, nil
}
