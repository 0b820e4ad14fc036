package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
)

// ReceiptService stores payment receipt binaries in blob storage and records
// their metadata in the receipts table.
type ReceiptService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
}

func NewReceiptService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore) *ReceiptService {
	return &ReceiptService{db: db, repomanager: m, blobs: blobs}
}

// receiptStorageKey builds a per-student object key. The uuid prefix keeps
// repeated uploads of the same file name from colliding.
func receiptStorageKey(studentID, fileName string) string {
	return fmt.Sprintf("receipts/%s/%s-%s", studentID, uuid.New(), fileName)
}

// Upload writes the receipt binary under a per-student path and records the
// metadata row. The student and the uploading user must exist.
func (s *ReceiptService) Upload(ctx context.Context, studentID, uploadedBy, fileName string, data []byte) (*models.Receipt, error) {
	if studentID == "" || uploadedBy == "" || fileName == "" || len(data) == 0 {
		return nil, common.ErrorInvalidRequest
	}

	if _, err := s.repomanager.Students(s.db).GetByID(ctx, studentID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorStoreUnavailable
	}

	key := receiptStorageKey(studentID, fileName)

	url, err := s.blobs.Put(ctx, key, data)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}

	receipt := &models.Receipt{
		StudentID:  studentID,
		UploadedBy: uploadedBy,
		FilePath:   key,
		FileURL:    url,
		FileName:   fileName,
	}

	receipt, err = s.repomanager.Receipts(s.db).Create(ctx, receipt)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}

	return receipt, nil
}

func (s *ReceiptService) ListByStudent(ctx context.Context, studentID string) ([]*models.Receipt, error) {
	if studentID == "" {
		return nil, common.ErrorInvalidRequest
	}

	result, err := s.repomanager.Receipts(s.db).ListByStudent(ctx, studentID)
	if err != nil {
		return nil, common.ErrorStoreUnavailable
	}
	return result, nil
}
