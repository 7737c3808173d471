package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Late threshold for the morning shift: 09:15 UTC.
const (
	lateHour   = 9
	lateMinute = 15
)

// StandardHoursLookup reports an employee's contracted hours per day,
// used as the overtime threshold. Owned by the employee module.
type StandardHoursLookup interface {
	StandardHoursPerDay(ctx context.Context, employeeID string) (float64, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	Correct(ctx context.Context, actorID, id string, req CorrectRequest) (AttendanceResponse, error)
	Approve(ctx context.Context, approverID, id string) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	SummarizeMonth(ctx context.Context, employeeID string, month, year int) (MonthSummary, error)
	ExportMonthlyReport(ctx context.Context, period string) ([]byte, error)
}

// MonthSummary rolls one employee's records for a month up into the day
// counts and overtime total payroll consumes.
type MonthSummary struct {
	PresentDays   int
	AbsentDays    int
	LateDays      int
	HalfDays      int
	OvertimeHours float64
}

type service struct {
	db    *sql.DB
	repo  Repository
	hours StandardHoursLookup
}

func NewService(db *sql.DB, repo Repository, hours StandardHoursLookup) Service {
	return &service{db: db, repo: repo, hours: hours}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	shift := req.Shift
	if shift == "" {
		shift = ShiftMorning
	}
	if !validShift(shift) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidShift
	}

	method := req.Method
	if method == "" {
		method = MethodManual
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	// One record per employee, date and shift. The check here keeps the
	// common path friendly; the unique index settles races.
	existing, err := qtx.FindByEmployeeDateShift(ctx, employeeID, today, shift)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	status := StatusPresent
	if shift == ShiftMorning && (now.Hour() > lateHour || (now.Hour() == lateHour && now.Minute() > lateMinute)) {
		status = StatusLate
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeUUID,
		AttendanceDate: today,
		Shift:          shift,
		ClockIn:        now,
		ClockInLoc:     req.Location,
		ClockInMethod:  method,
		Status:         status,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	shift := req.Shift
	if shift == "" {
		shift = ShiftMorning
	}
	if !validShift(shift) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidShift
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeDateShift(ctx, employeeID, today, shift)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	if req.Location != nil {
		row.ClockOutLoc = req.Location
	}
	if req.Method != nil {
		row.ClockOutMethod = req.Method
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := s.rederive(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

// Correct patches the clock timestamps of an existing record and
// recomputes the derived hours from scratch.
func (s *service) Correct(ctx context.Context, actorID, id string, req CorrectRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if req.ClockIn != nil {
		t, err := time.Parse(time.RFC3339, *req.ClockIn)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidTimeRange
		}
		row.ClockIn = t.UTC()
	}
	if req.ClockOut != nil {
		t, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidTimeRange
		}
		utc := t.UTC()
		row.ClockOut = &utc
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
		}
		row.Status = *req.Status
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := s.rederive(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Approve(ctx context.Context, approverID, id string) (AttendanceResponse, error) {
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.IsApproved = true
	row.ApprovedBy = &approverUUID

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) SummarizeMonth(ctx context.Context, employeeID string, month, year int) (MonthSummary, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return MonthSummary{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if month < 1 || month > 12 || year < 2000 {
		return MonthSummary{}, attendanceerrors.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	rows, err := s.repo.FindAllByEmployeeInRange(ctx, employeeID, from, to)
	if err != nil {
		return MonthSummary{}, err
	}

	var summary MonthSummary
	var overtime float64
	for _, row := range rows {
		switch row.Status {
		case StatusPresent:
			summary.PresentDays++
		case StatusLate:
			// A late day is still a worked day.
			summary.PresentDays++
			summary.LateDays++
		case StatusHalfDay:
			summary.HalfDays++
		case StatusAbsent:
			summary.AbsentDays++
		}
		overtime += row.OvertimeHours
	}
	summary.OvertimeHours = round2(overtime)
	return summary, nil
}

func (s *service) rederive(ctx context.Context, row *Attendance) error {
	standard := DefaultStandardHoursPerDay
	if s.hours != nil {
		if h, err := s.hours.StandardHoursPerDay(ctx, row.EmployeeID.String()); err == nil && h > 0 {
			standard = h
		}
	}

	derived, err := DeriveHours(row.ClockIn, row.ClockOut, standard)
	if err != nil {
		return err
	}
	row.TotalHours = derived.TotalHours
	row.OvertimeHours = derived.OvertimeHours
	return nil
}
