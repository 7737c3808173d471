package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	ShiftMorning   = "MORNING"
	ShiftAfternoon = "AFTERNOON"
	ShiftNight     = "NIGHT"

	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
	StatusOnLeave = "ON_LEAVE"

	MethodBiometric = "BIOMETRIC"
	MethodMobile    = "MOBILE"
	MethodWeb       = "WEB"
	MethodManual    = "MANUAL"
)

// Attendance is one employee-day(-shift) record. TotalHours and
// OvertimeHours are derived from the clock timestamps by DeriveHours and
// never written independently. The unique index is the storage-level
// guard against duplicate records racing in.
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index;uniqueIndex:uq_attendance_day_shift"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_day_shift"`
	Shift          string     `gorm:"column:shift;type:varchar(20);not null;default:MORNING;uniqueIndex:uq_attendance_day_shift"`
	ClockIn        time.Time  `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockInLoc     *string    `gorm:"column:clock_in_location;type:varchar(120)"`
	ClockInMethod  string     `gorm:"column:clock_in_method;type:varchar(20);not null;default:MANUAL"`
	ClockOut       *time.Time `gorm:"column:clock_out;type:timestamptz"`
	ClockOutLoc    *string    `gorm:"column:clock_out_location;type:varchar(120)"`
	ClockOutMethod *string    `gorm:"column:clock_out_method;type:varchar(20)"`
	TotalHours     float64    `gorm:"column:total_hours;not null;default:0"`
	OvertimeHours  float64    `gorm:"column:overtime_hours;not null;default:0"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	BreakStart     *time.Time `gorm:"column:break_start;type:timestamptz"`
	BreakEnd       *time.Time `gorm:"column:break_end;type:timestamptz"`
	BreakMinutes   int        `gorm:"column:break_minutes;not null;default:0"`
	IsApproved     bool       `gorm:"column:is_approved;not null;default:false"`
	ApprovedBy     *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	Notes          *string    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

func validShift(s string) bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	default:
		return false
	}
}

func validStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusOnLeave:
		return true
	default:
		return false
	}
}
