package receipts

import (
	"context"
	"fmt"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, receipt *models.Receipt) (*models.Receipt, error) {

	query :=
		`INSERT INTO receipts (student_id, uploaded_by, file_path, file_url, file_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, uploaded_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		receipt.StudentID, receipt.UploadedBy, receipt.FilePath, receipt.FileURL, receipt.FileName).
		Scan(&receipt.ID, &receipt.UploadedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return receipt, nil
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Receipt, error) {
	query :=
		`SELECT id, student_id, uploaded_by, file_path, file_url, file_name, uploaded_at
		 FROM receipts
		 WHERE student_id = $1
		 ORDER BY uploaded_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Receipt
	for rows.Next() {
		rec := &models.Receipt{}
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.UploadedBy, &rec.FilePath,
			&rec.FileURL, &rec.FileName, &rec.UploadedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
