package students

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {

	query :=
		`INSERT INTO students (name, birth_date, guardian, phone, monthly_fee, active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	var birthDate sql.NullTime
	if student.BirthDate != nil {
		birthDate = sql.NullTime{Time: *student.BirthDate, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		student.Name, birthDate, student.Guardian, student.Phone, student.MonthlyFee, student.Active).
		Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return student, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query :=
		`SELECT id, name, birth_date, guardian, phone, monthly_fee, class_id, active, created_at
		 FROM students
		 WHERE id = $1
		 `

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return student, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Student, error) {
	query :=
		`SELECT id, name, birth_date, guardian, phone, monthly_fee, class_id, active, created_at
		 FROM students
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, student *models.Student) error {
	query :=
		`UPDATE students
		 SET name = $2, birth_date = $3, guardian = $4, phone = $5, monthly_fee = $6, active = $7
		 WHERE id = $1
		 `

	var birthDate sql.NullTime
	if student.BirthDate != nil {
		birthDate = sql.NullTime{Time: *student.BirthDate, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		student.ID, student.Name, birthDate, student.Guardian, student.Phone, student.MonthlyFee, student.Active)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM students WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return checkAffected(res)
}

func (r *PostgresRepository) AssignClass(ctx context.Context, studentID, classID string) error {
	query := `UPDATE students SET class_id = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, studentID, classID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return checkAffected(res)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(s scanner) (*models.Student, error) {
	student := &models.Student{}
	var birthDate sql.NullTime
	var classID sql.NullString

	err := s.Scan(&student.ID, &student.Name, &birthDate, &student.Guardian,
		&student.Phone, &student.MonthlyFee, &classID, &student.Active, &student.CreatedAt)
	if err != nil {
		return nil, err
	}

	if birthDate.Valid {
		t := birthDate.Time
		student.BirthDate = &t
	}
	if classID.Valid {
		student.ClassID = classID.String
	}

	return student, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
