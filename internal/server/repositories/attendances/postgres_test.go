package attendances

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT\s+INTO\s+attendances`).
		WithArgs("s-1", "c-1", date, "u-coach").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-1"))

	a := &models.Attendance{StudentID: "s-1", ClassID: "c-1", Date: date, CheckedInBy: "u-coach"}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "a-1" {
		t.Fatalf("unexpected attendance: %+v", got)
	}
}

func TestCreate_DuplicateCheckIn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+attendances`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Attendance{StudentID: "s-1", ClassID: "c-1", Date: time.Now(), CheckedInBy: "u-1"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestListByClassAndDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT\s+id,\s*student_id,\s*class_id,\s*date,\s*checked_in_by`).
		WithArgs("c-1", date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "class_id", "date", "checked_in_by"}).
			AddRow("a-1", "s-1", "c-1", date, "u-1").
			AddRow("a-2", "s-2", "c-1", date, "u-1"))

	got, err := repo.ListByClassAndDate(context.Background(), "c-1", date)
	if err != nil {
		t.Fatalf("ListByClassAndDate error: %v", err)
	}
	if len(got) != 2 || got[1].StudentID != "s-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
