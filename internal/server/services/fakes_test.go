package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/common"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
	attendancesrepo "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/attendances"
	classesrepo "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/classes"
	paymentsrepo "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/payments"
	receiptsrepo "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/receipts"
	studentsrepo "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/students"
	usersrepo "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/users"
)

// --- fakes ---

// fakeUsersRepo keeps an in-memory user table and counts store calls, so
// tests can assert that invalid requests never reach the store.
type fakeUsersRepo struct {
	users map[string]*models.User

	getCalls    int
	createCalls int
	deleteCalls int

	getErr    error
	createErr error
	deleteErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *u
	created.ID = fmt.Sprintf("u-%d", len(f.users)+1)
	created.CreatedAt = time.Now()
	f.users[created.Username] = &created
	return &created, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUsersRepo) DeleteAll(ctx context.Context) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.users = make(map[string]*models.User)
	return nil
}

type fakeStudentsRepo struct {
	createOut *models.Student
	createErr error
	getOut    *models.Student
	getErr    error
	listOut   []*models.Student
	listErr   error
	updateErr error
	deleteErr error
	assignErr error
}

func (f *fakeStudentsRepo) Create(ctx context.Context, s *models.Student) (*models.Student, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeStudentsRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeStudentsRepo) List(ctx context.Context) ([]*models.Student, error) {
	return f.listOut, f.listErr
}
func (f *fakeStudentsRepo) Update(ctx context.Context, s *models.Student) error { return f.updateErr }
func (f *fakeStudentsRepo) Delete(ctx context.Context, id string) error         { return f.deleteErr }
func (f *fakeStudentsRepo) AssignClass(ctx context.Context, studentID, classID string) error {
	return f.assignErr
}

type fakeClassesRepo struct {
	createOut *models.Class
	createErr error
	getOut    *models.Class
	getErr    error
	listOut   []*models.Class
	listErr   error
}

func (f *fakeClassesRepo) Create(ctx context.Context, c *models.Class) (*models.Class, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeClassesRepo) GetByID(ctx context.Context, id string) (*models.Class, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeClassesRepo) List(ctx context.Context) ([]*models.Class, error) {
	return f.listOut, f.listErr
}

type fakePaymentsRepo struct {
	createOut *models.Payment
	createErr error
	listOut   []*models.Payment
	listErr   error
}

func (f *fakePaymentsRepo) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakePaymentsRepo) ListByStudent(ctx context.Context, studentID string) ([]*models.Payment, error) {
	return f.listOut, f.listErr
}
func (f *fakePaymentsRepo) ListByMonth(ctx context.Context, month string) ([]*models.Payment, error) {
	return f.listOut, f.listErr
}

type fakeAttendancesRepo struct {
	createOut *models.Attendance
	createErr error
	listOut   []*models.Attendance
	listErr   error
}

func (f *fakeAttendancesRepo) Create(ctx context.Context, a *models.Attendance) (*models.Attendance, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeAttendancesRepo) ListByClassAndDate(ctx context.Context, classID string, date time.Time) ([]*models.Attendance, error) {
	return f.listOut, f.listErr
}

type fakeReceiptsRepo struct {
	createOut *models.Receipt
	createErr error
	listOut   []*models.Receipt
	listErr   error
}

func (f *fakeReceiptsRepo) Create(ctx context.Context, r *models.Receipt) (*models.Receipt, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	created := *r
	created.ID = "r-1"
	created.UploadedAt = time.Now()
	return &created, nil
}
func (f *fakeReceiptsRepo) ListByStudent(ctx context.Context, studentID string) ([]*models.Receipt, error) {
	return f.listOut, f.listErr
}

type fakeBlobStore struct {
	putKey  string
	putData []byte
	putErr  error
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.putKey = key
	f.putData = data
	return "http://blob/" + key, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	s  *fakeStudentsRepo
	c  *fakeClassesRepo
	p  *fakePaymentsRepo
	a  *fakeAttendancesRepo
	rc *fakeReceiptsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Students(db dbx.DBTX) studentsrepo.Repository { return m.s }
func (m *fakeRepoManager) Classes(db dbx.DBTX) classesrepo.Repository   { return m.c }
func (m *fakeRepoManager) Payments(db dbx.DBTX) paymentsrepo.Repository { return m.p }
func (m *fakeRepoManager) Attendances(db dbx.DBTX) attendancesrepo.Repository {
	return m.a
}
func (m *fakeRepoManager) Receipts(db dbx.DBTX) receiptsrepo.Repository { return m.rc }
