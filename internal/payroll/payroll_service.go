package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PayrollTarget is one employee eligible for payroll generation, with
// the standing pay figures the directory knows about.
type PayrollTarget struct {
	EmployeeID   string
	BasicSalary  decimal.Decimal
	OvertimeRate decimal.Decimal
}

// EmployeeDirectory lists the employees a batch run should cover.
type EmployeeDirectory interface {
	ListPayrollTargets(ctx context.Context) ([]PayrollTarget, error)
}

// MonthSummary aggregates one employee's attendance over a period.
type MonthSummary struct {
	PresentDays   int
	AbsentDays    int
	LateDays      int
	HalfDays      int
	OvertimeHours float64
}

// AttendanceSummarizer feeds attendance-derived figures into payroll.
type AttendanceSummarizer interface {
	SummarizeMonth(ctx context.Context, employeeID string, month, year int) (MonthSummary, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter PayrollQueryFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	GenerateForPeriod(ctx context.Context, actorID string, req GeneratePayrollRequest) (GenerateResult, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outbox     kafka.OutboxRepository
	employees  EmployeeDirectory
	attendance AttendanceSummarizer
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	employees EmployeeDirectory,
	attendance AttendanceSummarizer,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		outbox:     outbox,
		employees:  employees,
		attendance: attendance,
	}
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000
}

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid, StatusFailed:
		return true
	}
	return false
}

// buildComponents flattens the three request maps into rows. Negative
// amounts are rejected outright; a deduction is already a subtraction.
func buildComponents(payrollID uuid.UUID, allowances, deductions, bonuses Components) ([]PayrollComponent, error) {
	var rows []PayrollComponent
	appendAll := func(componentType string, m Components) error {
		for name, amount := range m {
			if amount.IsNegative() {
				return payrollerrors.ErrNegativeComponent
			}
			rows = append(rows, PayrollComponent{
				ID:            uuid.New(),
				PayrollID:     payrollID,
				ComponentType: componentType,
				ComponentName: name,
				Amount:        amount,
			})
		}
		return nil
	}
	if err := appendAll(ComponentAllowance, allowances); err != nil {
		return nil, err
	}
	if err := appendAll(ComponentDeduction, deductions); err != nil {
		return nil, err
	}
	if err := appendAll(ComponentBonus, bonuses); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *service) recompute(p *Payroll) {
	allowances, deductions, bonuses := componentMaps(p.Components)
	p.OvertimeAmount = p.OvertimeRate.Mul(p.OvertimeHours)
	totals := ComputeSalary(p.BasicSalary, allowances, deductions, bonuses, p.OvertimeAmount)
	p.GrossSalary = totals.GrossSalary
	p.NetSalary = totals.NetSalary
}

// emitLifecycle stages a lifecycle event in the outbox inside the same
// transaction as the payroll write; the producer worker publishes it.
func (s *service) emitLifecycle(ctx context.Context, tx *sql.Tx, eventType string, p *Payroll, actorID string) error {
	payload, err := json.Marshal(events.PayrollLifecycleEvent{
		EventType:  eventType,
		PayrollID:  p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Month:      p.Month,
		Year:       p.Year,
		Status:     p.Status,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   p.ID.String(),
		EventType:     eventType,
		Topic:         events.PayrollLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	if !validPeriod(req.Month, req.Year) {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	row := &Payroll{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Month:         req.Month,
		Year:          req.Year,
		BasicSalary:   req.BasicSalary,
		OvertimeHours: req.OvertimeHours,
		OvertimeRate:  req.OvertimeRate,
		Status:        StatusPending,
		CreatedBy:     actorUUID,
	}
	row.Components, err = buildComponents(row.ID, req.Allowances, req.Deductions, req.Bonuses)
	if err != nil {
		return PayrollResponse{}, err
	}
	s.recompute(row)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollResponse{}, err
	}
	if err == nil && existing != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollExists
	}

	if err := qtx.Create(ctx, row); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := s.emitLifecycle(ctx, tx, events.PayrollGenerated, row, actorID); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter PayrollQueryFilter) ([]PayrollResponse, error) {
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if row.Status == StatusPaid {
		return PayrollResponse{}, payrollerrors.ErrPayrollLocked
	}

	if req.BasicSalary != nil {
		row.BasicSalary = *req.BasicSalary
	}
	if req.OvertimeHours != nil {
		row.OvertimeHours = *req.OvertimeHours
	}
	if req.OvertimeRate != nil {
		row.OvertimeRate = *req.OvertimeRate
	}

	// A nil map leaves that component group untouched; an empty map
	// clears it.
	if req.Allowances != nil || req.Deductions != nil || req.Bonuses != nil {
		allowances, deductions, bonuses := componentMaps(row.Components)
		if req.Allowances != nil {
			allowances = req.Allowances
		}
		if req.Deductions != nil {
			deductions = req.Deductions
		}
		if req.Bonuses != nil {
			bonuses = req.Bonuses
		}
		row.Components, err = buildComponents(row.ID, allowances, deductions, bonuses)
		if err != nil {
			return PayrollResponse{}, err
		}
		if err := qtx.ReplaceComponents(ctx, id, row.Components); err != nil {
			return PayrollResponse{}, err
		}
	}

	s.recompute(row)
	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	if !validStatus(req.Status) {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !validStatusTransition(row.Status, req.Status) {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	if req.Status == StatusPaid {
		if req.PaymentDate == nil {
			return PayrollResponse{}, payrollerrors.ErrPaymentDateRequired
		}
		paymentDate, err := time.Parse(time.RFC3339, *req.PaymentDate)
		if err != nil {
			return PayrollResponse{}, payrollerrors.ErrPaymentDateRequired
		}
		row.PaymentDate = &paymentDate
	}
	if req.ApprovedBy != nil {
		approverUUID, err := uuid.Parse(*req.ApprovedBy)
		if err != nil {
			return PayrollResponse{}, payrollerrors.ErrInvalidActorID
		}
		row.ApprovedBy = &approverUUID
	}
	row.Status = req.Status

	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	switch req.Status {
	case StatusPaid:
		err = s.emitLifecycle(ctx, tx, events.PayrollPaid, row, actorID)
	case StatusFailed:
		err = s.emitLifecycle(ctx, tx, events.PayrollFailed, row, actorID)
	}
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if row.Status != StatusPending {
		return payrollerrors.ErrDeleteOnlyPending
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

// GenerateForPeriod runs payroll for every active employee that does not
// already have a record for the period. Each employee commits in its
// own transaction, so one bad record does not sink the batch.
func (s *service) GenerateForPeriod(ctx context.Context, actorID string, req GeneratePayrollRequest) (GenerateResult, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return GenerateResult{}, payrollerrors.ErrInvalidActorID
	}
	if !validPeriod(req.Month, req.Year) {
		return GenerateResult{}, payrollerrors.ErrInvalidPeriod
	}

	targets, err := s.employees.ListPayrollTargets(ctx)
	if err != nil {
		return GenerateResult{}, err
	}

	logger := contextutil.GetLogger(ctx, zap.L())
	var result GenerateResult
	for _, target := range targets {
		created, id, err := s.generateOne(ctx, actorUUID, target, req.Month, req.Year)
		if err != nil {
			logger.Warn("payroll generation skipped employee",
				zap.String("employee_id", target.EmployeeID),
				zap.Int("month", req.Month),
				zap.Int("year", req.Year),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		if !created {
			result.Skipped++
			continue
		}
		result.Created++
		result.IDs = append(result.IDs, id)
	}
	return result, nil
}

func (s *service) generateOne(ctx context.Context, actorUUID uuid.UUID, target PayrollTarget, month, year int) (bool, string, error) {
	employeeUUID, err := uuid.Parse(target.EmployeeID)
	if err != nil {
		return false, "", payrollerrors.ErrInvalidEmployeeID
	}

	summary, err := s.attendance.SummarizeMonth(ctx, target.EmployeeID, month, year)
	if err != nil {
		return false, "", err
	}

	row := &Payroll{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Month:         month,
		Year:          year,
		BasicSalary:   target.BasicSalary,
		OvertimeHours: decimal.NewFromFloat(summary.OvertimeHours),
		OvertimeRate:  target.OvertimeRate,
		PresentDays:   summary.PresentDays,
		AbsentDays:    summary.AbsentDays,
		LateDays:      summary.LateDays,
		HalfDays:      summary.HalfDays,
		Status:        StatusPending,
		CreatedBy:     actorUUID,
	}
	s.recompute(row)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndPeriod(ctx, target.EmployeeID, month, year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, "", err
	}
	if err == nil && existing != nil {
		return false, "", nil
	}

	if err := qtx.Create(ctx, row); err != nil {
		return false, "", mapRepositoryError(err)
	}
	if err := s.emitLifecycle(ctx, tx, events.PayrollGenerated, row, actorUUID.String()); err != nil {
		return false, "", err
	}
	if err := tx.Commit(); err != nil {
		return false, "", err
	}
	return true, row.ID.String(), nil
}
