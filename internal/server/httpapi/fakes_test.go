package httpapi

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/logging"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/attendances"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/classes"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/payments"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/receipts"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/students"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/users"
)

// In-memory repositories backing full-stack handler tests. They honor the
// same sentinel-error contract as the Postgres implementations.

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (noopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l noopLogger) With(args ...any) logging.Logger                  { return l }

type memUsersRepo struct {
	byUsername map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byUsername: map[string]*models.User{}}
}

func (r *memUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	clone := *user
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("u-%d", len(r.byUsername)+1)
	}
	r.byUsername[clone.Username] = &clone
	return &clone, nil
}

func (r *memUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUsersRepo) DeleteAll(ctx context.Context) error {
	r.byUsername = map[string]*models.User{}
	return nil
}

type memStudentsRepo struct {
	byID map[string]*models.Student
	next int
}

func newMemStudentsRepo() *memStudentsRepo {
	return &memStudentsRepo{byID: map[string]*models.Student{}}
}

func (r *memStudentsRepo) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	r.next++
	clone := *student
	clone.ID = fmt.Sprintf("s-%d", r.next)
	clone.CreatedAt = time.Now()
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *memStudentsRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memStudentsRepo) List(ctx context.Context) ([]*models.Student, error) {
	result := []*models.Student{}
	for _, s := range r.byID {
		clone := *s
		result = append(result, &clone)
	}
	return result, nil
}

func (r *memStudentsRepo) Update(ctx context.Context, student *models.Student) error {
	if _, ok := r.byID[student.ID]; !ok {
		return common.ErrorNotFound
	}
	clone := *student
	r.byID[clone.ID] = &clone
	return nil
}

func (r *memStudentsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memStudentsRepo) AssignClass(ctx context.Context, studentID, classID string) error {
	s, ok := r.byID[studentID]
	if !ok {
		return common.ErrorNotFound
	}
	s.ClassID = classID
	return nil
}

type memClassesRepo struct {
	byID map[string]*models.Class
	next int
}

func newMemClassesRepo() *memClassesRepo {
	return &memClassesRepo{byID: map[string]*models.Class{}}
}

func (r *memClassesRepo) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	r.next++
	clone := *class
	clone.ID = fmt.Sprintf("c-%d", r.next)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *memClassesRepo) GetByID(ctx context.Context, id string) (*models.Class, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memClassesRepo) List(ctx context.Context) ([]*models.Class, error) {
	result := []*models.Class{}
	for _, c := range r.byID {
		clone := *c
		result = append(result, &clone)
	}
	return result, nil
}

type memPaymentsRepo struct {
	items []*models.Payment
	next  int
}

func (r *memPaymentsRepo) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	for _, p := range r.items {
		if p.StudentID == payment.StudentID && p.ReferenceMonth == payment.ReferenceMonth {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.next++
	clone := *payment
	clone.ID = fmt.Sprintf("p-%d", r.next)
	clone.PaidAt = time.Now()
	r.items = append(r.items, &clone)
	return &clone, nil
}

func (r *memPaymentsRepo) ListByStudent(ctx context.Context, studentID string) ([]*models.Payment, error) {
	result := []*models.Payment{}
	for _, p := range r.items {
		if p.StudentID == studentID {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memPaymentsRepo) ListByMonth(ctx context.Context, referenceMonth string) ([]*models.Payment, error) {
	result := []*models.Payment{}
	for _, p := range r.items {
		if p.ReferenceMonth == referenceMonth {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}

type memAttendancesRepo struct {
	items []*models.Attendance
	next  int
}

func (r *memAttendancesRepo) Create(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	for _, a := range r.items {
		if a.StudentID == attendance.StudentID && a.ClassID == attendance.ClassID && a.Date.Equal(attendance.Date) {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.next++
	clone := *attendance
	clone.ID = fmt.Sprintf("a-%d", r.next)
	r.items = append(r.items, &clone)
	return &clone, nil
}

func (r *memAttendancesRepo) ListByClassAndDate(ctx context.Context, classID string, date time.Time) ([]*models.Attendance, error) {
	result := []*models.Attendance{}
	for _, a := range r.items {
		if a.ClassID == classID && a.Date.Equal(date) {
			clone := *a
			result = append(result, &clone)
		}
	}
	return result, nil
}

type memReceiptsRepo struct {
	items []*models.Receipt
	next  int
}

func (r *memReceiptsRepo) Create(ctx context.Context, receipt *models.Receipt) (*models.Receipt, error) {
	r.next++
	clone := *receipt
	clone.ID = fmt.Sprintf("r-%d", r.next)
	clone.UploadedAt = time.Now()
	r.items = append(r.items, &clone)
	return &clone, nil
}

func (r *memReceiptsRepo) ListByStudent(ctx context.Context, studentID string) ([]*models.Receipt, error) {
	result := []*models.Receipt{}
	for _, rec := range r.items {
		if rec.StudentID == studentID {
			clone := *rec
			result = append(result, &clone)
		}
	}
	return result, nil
}

type memBlobStore struct {
	objects map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: map[string][]byte{}}
}

func (b *memBlobStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	b.objects[key] = data
	return "http://blob.local/" + key, nil
}

type memRepoManager struct {
	users       *memUsersRepo
	students    *memStudentsRepo
	classes     *memClassesRepo
	payments    *memPaymentsRepo
	attendances *memAttendancesRepo
	receipts    *memReceiptsRepo
}

func newMemRepoManager() *memRepoManager {
	return &memRepoManager{
		users:       newMemUsersRepo(),
		students:    newMemStudentsRepo(),
		classes:     newMemClassesRepo(),
		payments:    &memPaymentsRepo{},
		attendances: &memAttendancesRepo{},
		receipts:    &memReceiptsRepo{},
	}
}

func (m *memRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *memRepoManager) Students(db dbx.DBTX) students.Repository            { return m.students }
func (m *memRepoManager) Classes(db dbx.DBTX) classes.Repository              { return m.classes }
func (m *memRepoManager) Payments(db dbx.DBTX) payments.Repository            { return m.payments }
func (m *memRepoManager) Attendances(db dbx.DBTX) attendances.Repository      { return m.attendances }
func (m *memRepoManager) Receipts(db dbx.DBTX) receipts.Repository            { return m.receipts }
