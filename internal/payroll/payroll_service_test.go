package payroll

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/messaging/kafka"
	payrollerrors "go-workforce/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn            func(tx *sql.Tx) Repository
	createFn            func(ctx context.Context, p *Payroll) error
	findByIDFn          func(ctx context.Context, id string) (*Payroll, error)
	findByEmplPeriodFn  func(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	findAllFn           func(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	replaceComponentsFn func(ctx context.Context, payrollID string, components []PayrollComponent) error
	updateFn            func(ctx context.Context, p *Payroll) error
	deleteFn            func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                 { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, p *Payroll) error { return f.createFn(ctx, p) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
	return f.findByEmplPeriodFn(ctx, employeeID, month, year)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) ReplaceComponents(ctx context.Context, payrollID string, components []PayrollComponent) error {
	return f.replaceComponentsFn(ctx, payrollID, components)
}
func (f *fakeRepo) Update(ctx context.Context, p *Payroll) error { return f.updateFn(ctx, p) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error  { return f.deleteFn(ctx, id) }

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

type fakeDirectory struct {
	targets []PayrollTarget
}

func (f *fakeDirectory) ListPayrollTargets(ctx context.Context) ([]PayrollTarget, error) {
	return f.targets, nil
}

type fakeSummarizer struct {
	summary MonthSummary
}

func (f *fakeSummarizer) SummarizeMonth(ctx context.Context, employeeID string, month, year int) (MonthSummary, error) {
	return f.summary, nil
}

func newTestRepo() (*fakeRepo, *Payroll) {
	var saved Payroll
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, p *Payroll) error { saved = *p; return nil }
	repo.updateFn = func(ctx context.Context, p *Payroll) error { saved = *p; return nil }
	repo.deleteFn = func(ctx context.Context, id string) error { return nil }
	repo.replaceComponentsFn = func(ctx context.Context, payrollID string, components []PayrollComponent) error {
		return nil
	}
	repo.findByEmplPeriodFn = func(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.findAllFn = func(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
		return nil, nil
	}
	return repo, &saved
}

func TestService_Create_ComputesTotalsAndQueuesEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, saved := newTestRepo()
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox, nil, nil)

	actorID := uuid.New().String()
	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), actorID, CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		Month:       3,
		Year:        2025,
		BasicSalary: decimal.NewFromInt(50000),
		Allowances: map[string]decimal.Decimal{
			"houseRent": decimal.NewFromInt(5000),
			"transport": decimal.NewFromInt(2500),
		},
		Deductions: map[string]decimal.Decimal{
			"pf":  decimal.NewFromInt(6000),
			"tax": decimal.NewFromInt(2500),
		},
		Bonuses: map[string]decimal.Decimal{
			"performance": decimal.NewFromInt(5000),
		},
		OvertimeHours: decimal.NewFromInt(10),
		OvertimeRate:  decimal.NewFromInt(100),
	})
	assert.NoError(t, err)
	assert.True(t, resp.GrossSalary.Equal(decimal.NewFromInt(63500)))
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(55000)))
	assert.Equal(t, StatusPending, saved.Status)

	if assert.Len(t, outbox.created, 1) {
		assert.Equal(t, "payroll.generated", outbox.created[0].EventType)
		assert.Equal(t, saved.ID.String(), outbox.created[0].AggregateID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicatePeriod(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newTestRepo()
	repo.findByEmplPeriodFn = func(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
		return &Payroll{ID: uuid.New()}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.New().String(), CreatePayrollRequest{
		EmployeeID: uuid.New().String(),
		Month:      3,
		Year:       2025,
	})
	assert.True(t, errors.Is(err, payrollerrors.ErrPayrollExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_NegativeComponent(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newTestRepo()
	svc := NewService(db, repo, &fakeOutbox{}, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New().String(), CreatePayrollRequest{
		EmployeeID: uuid.New().String(),
		Month:      3,
		Year:       2025,
		Deductions: map[string]decimal.Decimal{"tax": decimal.NewFromInt(-100)},
	})
	assert.True(t, errors.Is(err, payrollerrors.ErrNegativeComponent))
}

func TestService_Update_PaidIsLocked(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newTestRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		return &Payroll{ID: uuid.New(), Status: StatusPaid}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	basic := decimal.NewFromInt(60000)
	_, err := svc.Update(context.Background(), uuid.New().String(), uuid.New().String(), UpdatePayrollRequest{
		BasicSalary: &basic,
	})
	assert.True(t, errors.Is(err, payrollerrors.ErrPayrollLocked))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus_PaidRequiresPaymentDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newTestRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		return &Payroll{ID: uuid.New(), Status: StatusProcessing}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), uuid.New().String(), UpdateStatusRequest{
		Status: StatusPaid,
	})
	assert.True(t, errors.Is(err, payrollerrors.ErrPaymentDateRequired))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus_PaidQueuesEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, saved := newTestRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		return &Payroll{ID: uuid.New(), EmployeeID: uuid.New(), Status: StatusProcessing}, nil
	}
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox, nil, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	paymentDate := time.Now().UTC().Format(time.RFC3339)
	resp, err := svc.UpdateStatus(context.Background(), uuid.New().String(), uuid.New().String(), UpdateStatusRequest{
		Status:      StatusPaid,
		PaymentDate: &paymentDate,
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, resp.Status)
	assert.NotNil(t, saved.PaymentDate)

	if assert.Len(t, outbox.created, 1) {
		assert.Equal(t, "payroll.paid", outbox.created[0].EventType)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newTestRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		return &Payroll{ID: uuid.New(), Status: StatusPending}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), uuid.New().String(), UpdateStatusRequest{
		Status: StatusPaid,
	})
	assert.True(t, errors.Is(err, payrollerrors.ErrInvalidStatusTransition))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_OnlyPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newTestRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		return &Payroll{ID: uuid.New(), Status: StatusProcessing}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, payrollerrors.ErrDeleteOnlyPending))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GenerateForPeriod(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, saved := newTestRepo()
	existingEmployee := uuid.New().String()
	repo.findByEmplPeriodFn = func(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
		if employeeID == existingEmployee {
			return &Payroll{ID: uuid.New()}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	outbox := &fakeOutbox{}
	directory := &fakeDirectory{targets: []PayrollTarget{
		{EmployeeID: uuid.New().String(), BasicSalary: decimal.NewFromInt(50000), OvertimeRate: decimal.NewFromInt(200)},
		{EmployeeID: existingEmployee, BasicSalary: decimal.NewFromInt(40000), OvertimeRate: decimal.NewFromInt(150)},
	}}
	summarizer := &fakeSummarizer{summary: MonthSummary{
		PresentDays:   20,
		LateDays:      2,
		OvertimeHours: 5,
	}}
	svc := NewService(db, repo, outbox, directory, summarizer)

	// One tx per target; the second rolls back on the duplicate check.
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	result, err := svc.GenerateForPeriod(context.Background(), uuid.New().String(), GeneratePayrollRequest{
		Month: 3,
		Year:  2025,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.IDs, 1)

	// overtime 5h at 200 on top of 50000 basic
	assert.True(t, saved.GrossSalary.Equal(decimal.NewFromInt(51000)))
	assert.Equal(t, 20, saved.PresentDays)
	assert.Len(t, outbox.created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
