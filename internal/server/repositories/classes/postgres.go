package classes

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

func (r *PostgresRepository) Create(ctx context.Context, class *models.Class) (*models.Class, error) {

	query :=
		`INSERT INTO classes (name, schedule, coach_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, class.Name, class.Schedule, class.CoachID).Scan(&class.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return class, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Class, error) {
	query :=
		`SELECT id, name, schedule, coach_id FROM classes
		 WHERE id = $1
		 `

	class := &models.Class{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&class.ID, &class.Name, &class.Schedule, &class.CoachID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return class, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Class, error) {
	query :=
		`SELECT id, name, schedule, coach_id FROM classes
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.Schedule, &class.CoachID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
