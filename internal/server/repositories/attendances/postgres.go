package attendances

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {

	query :=
		`INSERT INTO attendances (student_id, class_id, date, checked_in_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		attendance.StudentID, attendance.ClassID, attendance.Date, attendance.CheckedInBy).
		Scan(&attendance.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return attendance, nil
}

func (r *PostgresRepository) ListByClassAndDate(ctx context.Context, classID string, date time.Time) ([]*models.Attendance, error) {
	query :=
		`SELECT id, student_id, class_id, date, checked_in_by FROM attendances
		 WHERE class_id = $1 AND date = $2
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, classID, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.Date, &a.CheckedInBy); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
