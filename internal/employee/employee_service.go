package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKey = "employees:options"

const minPasswordLength = 8

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Assign(ctx context.Context, employeeID string, req AssignRequest) (AssignmentResponse, error)
	Unassign(ctx context.Context, employeeID, responsibilityID string) error
	GetAssignments(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if len(req.Password) < minPasswordLength {
		return EmployeeResponse{}, employeeerrors.ErrWeakPassword
	}
	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	status := req.EmploymentStatus
	if status == "" {
		status = EmploymentActive
	}
	if !validEmploymentStatus(status) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmploymentStatus
	}
	var roleID *uuid.UUID
	if req.RoleID != "" {
		parsed, err := uuid.Parse(req.RoleID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidRoleID
		}
		roleID = &parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	standardHours := req.StandardHoursPerDay
	if standardHours <= 0 {
		standardHours = 8
	}
	capacity := req.CapacityHoursPerWeek
	if capacity <= 0 {
		capacity = 40
	}

	empl := &Employee{
		ID:                   uuid.New(),
		EmployeeNumber:       req.EmployeeNumber,
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		PasswordHash:         string(hash),
		RoleID:               roleID,
		BasicSalary:          req.BasicSalary,
		OvertimeRate:         req.OvertimeRate,
		StandardHoursPerDay:  standardHours,
		CapacityHoursPerWeek: capacity,
		HireDate:             hireDate,
		EmploymentStatus:     status,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.EmployeeCreatedEvent{
			EventType:  events.EmployeeCreated,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			FullName:   empl.FullName,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     events.EmployeeCreated,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// GetOptions serves the dropdown-sized employee list through a Redis
// cache; singleflight collapses concurrent misses into one query.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		row.FullName = *req.FullName
	}
	if req.Email != nil {
		row.Email = *req.Email
	}
	if req.Phone != nil {
		row.Phone = *req.Phone
	}
	if req.RoleID != nil {
		if *req.RoleID == "" {
			row.RoleID = nil
		} else {
			parsed, err := uuid.Parse(*req.RoleID)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidRoleID
			}
			row.RoleID = &parsed
		}
	}
	if req.BasicSalary != nil {
		row.BasicSalary = *req.BasicSalary
	}
	if req.OvertimeRate != nil {
		row.OvertimeRate = *req.OvertimeRate
	}
	if req.StandardHoursPerDay != nil && *req.StandardHoursPerDay > 0 {
		row.StandardHoursPerDay = *req.StandardHoursPerDay
	}
	if req.CapacityHoursPerWeek != nil && *req.CapacityHoursPerWeek > 0 {
		row.CapacityHoursPerWeek = *req.CapacityHoursPerWeek
	}
	if req.EmploymentStatus != nil {
		if !validEmploymentStatus(*req.EmploymentStatus) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmploymentStatus
		}
		row.EmploymentStatus = *req.EmploymentStatus
	}

	if err := qtx.Update(ctx, row); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	return mapToResponse(*row), nil
}

func (s *service) Assign(ctx context.Context, employeeID string, req AssignRequest) (AssignmentResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	responsibilityUUID, err := uuid.Parse(req.ResponsibilityID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidResponsibilityID
	}
	if req.WeeklyHours <= 0 {
		return AssignmentResponse{}, employeeerrors.ErrInvalidWeeklyHours
	}
	var subUUID *uuid.UUID
	if req.SubResponsibilityID != nil && *req.SubResponsibilityID != "" {
		parsed, err := uuid.Parse(*req.SubResponsibilityID)
		if err != nil {
			return AssignmentResponse{}, employeeerrors.ErrInvalidResponsibilityID
		}
		subUUID = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, employeeID); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	row := &Assignment{
		ID:                  uuid.New(),
		EmployeeID:          employeeUUID,
		ResponsibilityID:    responsibilityUUID,
		SubResponsibilityID: subUUID,
		WeeklyHours:         req.WeeklyHours,
	}
	if err := qtx.CreateAssignment(ctx, row); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("assignment created",
		zap.String("employee_id", employeeID),
		zap.String("responsibility_id", req.ResponsibilityID),
		zap.Float64("weekly_hours", req.WeeklyHours),
	)
	return mapAssignmentToResponse(*row), nil
}

func (s *service) Unassign(ctx context.Context, employeeID, responsibilityID string) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(responsibilityID); err != nil {
		return employeeerrors.ErrInvalidResponsibilityID
	}

	affected, err := s.repo.DeleteAssignment(ctx, employeeID, responsibilityID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrAssignmentNotFound
	}
	return nil
}

func (s *service) GetAssignments(ctx context.Context, employeeID string) ([]AssignmentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAssignmentsByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []AssignmentResponse{}, nil
		}
		return nil, err
	}
	resp := make([]AssignmentResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapAssignmentToResponse(row)
	}
	return resp, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}
