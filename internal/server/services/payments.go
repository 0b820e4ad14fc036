package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
)

// referenceMonthRe matches the "YYYY-MM" form used for monthly fee tracking.
var referenceMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PaymentService records and lists monthly fee payments.
type PaymentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPaymentService(db *sql.DB, m repomanager.RepositoryManager) *PaymentService {
	return &PaymentService{db: db, repomanager: m}
}

// Record stores one payment. A second payment for the same student and
// reference month is rejected with ErrorAlreadyExists.
func (s *PaymentService) Record(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.StudentID == "" || payment.Amount <= 0 || !referenceMonthRe.MatchString(payment.ReferenceMonth) {
		return nil, common.ErrorInvalidRequest
	}

	if _, err := s.repomanager.Students(s.db).GetByID(ctx, payment.StudentID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorStoreUnavailable
	}

	created, err := s.repomanager.Payments(s.db).Create(ctx, payment)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorStoreUnavailable
	}
	return created, nil
}

func (s *PaymentService) ListByStudent(ctx context.Context, studentID string) ([]*models.Payment, error) {
	if studentID == "" {
		return nil, common.ErrorInvalidRequest
	}

	result, err := s.repomanager.Payments(s.db).ListByStudent(ctx, studentID)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return result, nil
}

func (s *PaymentService) ListByMonth(ctx context.Context, referenceMonth string) ([]*models.Payment, error) {
	if !referenceMonthRe.MatchString(referenceMonth) {
		return nil, common.ErrorInvalidRequest
	}

	result, err := s.repomanager.Payments(s.db).ListByMonth(ctx, referenceMonth)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return result, nil
}
