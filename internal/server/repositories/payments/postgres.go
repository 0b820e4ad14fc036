package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

// uniqueViolation is the Postgres error code for unique constraint breaks.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {

	query :=
		`INSERT INTO payments (student_id, reference_month, amount)
		 VALUES ($1, $2, $3)
		 RETURNING id, paid_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		payment.StudentID, payment.ReferenceMonth, payment.Amount).
		Scan(&payment.ID, &payment.PaidAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return payment, nil
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Payment, error) {
	query :=
		`SELECT id, student_id, reference_month, amount, paid_at FROM payments
		 WHERE student_id = $1
		 ORDER BY reference_month
		 `

	return r.list(ctx, query, studentID)
}

func (r *PostgresRepository) ListByMonth(ctx context.Context, referenceMonth string) ([]*models.Payment, error) {
	query :=
		`SELECT id, student_id, reference_month, amount, paid_at FROM payments
		 WHERE reference_month = $1
		 ORDER BY paid_at
		 `

	return r.list(ctx, query, referenceMonth)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg any) ([]*models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.StudentID, &p.ReferenceMonth, &p.Amount, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
