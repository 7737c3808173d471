package employee

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	CreateFn                    func(ctx context.Context, e *Employee) error
	FindByIDFn                  func(ctx context.Context, id string) (*Employee, error)
	FindByEmailFn               func(ctx context.Context, email string) (*Employee, error)
	FindAllFn                   func(ctx context.Context) ([]Employee, error)
	FindAllActiveFn             func(ctx context.Context) ([]Employee, error)
	UpdateFn                    func(ctx context.Context, e *Employee) error
	CreateAssignmentFn          func(ctx context.Context, a *Assignment) error
	DeleteAssignmentFn          func(ctx context.Context, employeeID, responsibilityID string) (int64, error)
	FindAssignmentsByEmployeeFn func(ctx context.Context, employeeID string) ([]Assignment, error)
	FindAssignedRowsFn          func(ctx context.Context, responsibilityID string) ([]AssignedRow, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error {
	return f.CreateFn(ctx, e)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return f.FindByEmailFn(ctx, email)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeRepo) FindAllActive(ctx context.Context) ([]Employee, error) {
	return f.FindAllActiveFn(ctx)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error {
	return f.UpdateFn(ctx, e)
}
func (f *fakeRepo) CreateAssignment(ctx context.Context, a *Assignment) error {
	return f.CreateAssignmentFn(ctx, a)
}
func (f *fakeRepo) DeleteAssignment(ctx context.Context, employeeID, responsibilityID string) (int64, error) {
	return f.DeleteAssignmentFn(ctx, employeeID, responsibilityID)
}
func (f *fakeRepo) FindAssignmentsByEmployee(ctx context.Context, employeeID string) ([]Assignment, error) {
	return f.FindAssignmentsByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindAssignedRows(ctx context.Context, responsibilityID string) ([]AssignedRow, error) {
	return f.FindAssignedRowsFn(ctx, responsibilityID)
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                  { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FullName:     "Siti Rahma",
		Email:        "siti@factory.example",
		Password:     "correct horse",
		BasicSalary:  decimal.NewFromInt(50000),
		OvertimeRate: decimal.NewFromInt(200),
		HireDate:     "2025-01-15",
	}
}

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var persisted *Employee
	repo := &fakeRepo{
		CreateFn: func(ctx context.Context, e *Employee) error {
			persisted = e
			return nil
		},
	}
	counterRepo := &fakeCounter{next: 6}
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, counterRepo, outbox, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000007", resp.EmployeeNumber)
	assert.Equal(t, EmploymentActive, resp.EmploymentStatus)
	assert.Equal(t, 8.0, resp.StandardHoursPerDay)
	assert.Equal(t, 40.0, resp.CapacityHoursPerWeek)

	if assert.NotNil(t, persisted) {
		assert.NotEqual(t, "correct horse", persisted.PasswordHash)
		err := bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("correct horse"))
		assert.NoError(t, err, "stored hash should verify against the original password")
	}

	if assert.Len(t, outbox.created, 1) {
		assert.Equal(t, events.EmployeeCreated, outbox.created[0].EventType)
		assert.Equal(t, events.EmployeeLifecycleTopic, outbox.created[0].Topic)
		assert.Equal(t, kafka.OutboxStatusPending, outbox.created[0].Status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, &fakeOutbox{}, nil)
	ctx := context.Background()

	req := validCreateRequest()
	req.Password = "short"
	_, err := svc.Create(ctx, req)
	assert.True(t, errors.Is(err, employeeerrors.ErrWeakPassword))

	req = validCreateRequest()
	req.HireDate = "15/01/2025"
	_, err = svc.Create(ctx, req)
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidHireDate))

	req = validCreateRequest()
	req.EmploymentStatus = "SABBATICAL"
	_, err = svc.Create(ctx, req)
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidEmploymentStatus))

	req = validCreateRequest()
	req.RoleID = "not-a-uuid"
	_, err = svc.Create(ctx, req)
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidRoleID))
}

func TestService_Create_KeepsProvidedNumber(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		CreateFn: func(ctx context.Context, e *Employee) error { return nil },
	}
	svc := NewService(db, repo, &fakeCounter{}, &fakeOutbox{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := validCreateRequest()
	req.EmployeeNumber = "EMP-LEGACY-42"
	resp, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "EMP-LEGACY-42", resp.EmployeeNumber)
}

func TestService_Assign(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	var created *Assignment
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			return &Employee{ID: employeeID, EmploymentStatus: EmploymentActive}, nil
		},
		CreateAssignmentFn: func(ctx context.Context, a *Assignment) error {
			created = a
			return nil
		},
	}
	svc := NewService(db, repo, &fakeCounter{}, &fakeOutbox{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	responsibilityID := uuid.New().String()
	resp, err := svc.Assign(context.Background(), employeeID.String(), AssignRequest{
		ResponsibilityID: responsibilityID,
		WeeklyHours:      16,
	})
	assert.NoError(t, err)
	assert.Equal(t, responsibilityID, resp.ResponsibilityID)
	assert.Equal(t, 16.0, resp.WeeklyHours)
	if assert.NotNil(t, created) {
		assert.Equal(t, employeeID, created.EmployeeID)
		assert.Nil(t, created.SubResponsibilityID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Assign_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, &fakeOutbox{}, nil)
	ctx := context.Background()

	_, err := svc.Assign(ctx, "nope", AssignRequest{ResponsibilityID: uuid.New().String(), WeeklyHours: 8})
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidEmployeeID))

	_, err = svc.Assign(ctx, uuid.New().String(), AssignRequest{ResponsibilityID: "nope", WeeklyHours: 8})
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidResponsibilityID))

	_, err = svc.Assign(ctx, uuid.New().String(), AssignRequest{ResponsibilityID: uuid.New().String(), WeeklyHours: 0})
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidWeeklyHours))
}

func TestService_Unassign(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	affected := int64(1)
	repo := &fakeRepo{
		DeleteAssignmentFn: func(ctx context.Context, employeeID, responsibilityID string) (int64, error) {
			return affected, nil
		},
	}
	svc := NewService(db, repo, &fakeCounter{}, &fakeOutbox{}, nil)
	ctx := context.Background()

	err := svc.Unassign(ctx, uuid.New().String(), uuid.New().String())
	assert.NoError(t, err)

	affected = 0
	err = svc.Unassign(ctx, uuid.New().String(), uuid.New().String())
	assert.True(t, errors.Is(err, employeeerrors.ErrAssignmentNotFound))
}

func TestService_GetByID_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, &fakeOutbox{}, nil)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, employeeerrors.ErrInvalidEmployeeID))
}

func TestService_GetOptions_NoCache(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	calls := 0
	repo := &fakeRepo{
		FindAllActiveFn: func(ctx context.Context) ([]Employee, error) {
			calls++
			return []Employee{
				{ID: uuid.New(), EmployeeNumber: "EMP-000001", FullName: "Siti Rahma", EmploymentStatus: EmploymentActive},
			}, nil
		},
	}
	svc := NewService(db, repo, &fakeCounter{}, &fakeOutbox{}, nil)

	resp, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Siti Rahma", resp[0].FullName)
	assert.Equal(t, 1, calls)
}
