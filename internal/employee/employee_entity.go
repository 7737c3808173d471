package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EmploymentActive     = "ACTIVE"
	EmploymentOnLeave    = "ON_LEAVE"
	EmploymentTerminated = "TERMINATED"
)

// Employee is the master record for one worker: identity, credentials,
// the org role they hold, and the standing pay figures payroll
// generation reads.
type Employee struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string     `gorm:"column:employee_number;type:varchar(20);not null;uniqueIndex"`
	FullName       string     `gorm:"column:full_name;type:varchar(150);not null"`
	Email          string     `gorm:"column:email;type:varchar(150);not null;uniqueIndex"`
	Phone          string     `gorm:"column:phone;type:varchar(30)"`
	PasswordHash   string     `gorm:"column:password_hash;type:varchar(100);not null"`
	RoleID         *uuid.UUID `gorm:"column:role_id;type:uuid;index"`

	BasicSalary          decimal.Decimal `gorm:"column:basic_salary;type:numeric(14,2);not null;default:0"`
	OvertimeRate         decimal.Decimal `gorm:"column:overtime_rate;type:numeric(14,2);not null;default:0"`
	StandardHoursPerDay  float64         `gorm:"column:standard_hours_per_day;not null;default:8"`
	CapacityHoursPerWeek float64         `gorm:"column:capacity_hours_per_week;not null;default:40"`

	HireDate         time.Time `gorm:"column:hire_date;type:date;not null"`
	EmploymentStatus string    `gorm:"column:employment_status;type:varchar(20);not null;default:'ACTIVE';index"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Assignment attaches an employee to a responsibility for a share of
// their weekly hours. Coverage and utilization reporting read these
// rows through the lookup interface the org package defines.
type Assignment struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID          uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_assignment"`
	ResponsibilityID    uuid.UUID  `gorm:"column:responsibility_id;type:uuid;not null;uniqueIndex:uq_assignment;index"`
	SubResponsibilityID *uuid.UUID `gorm:"column:sub_responsibility_id;type:uuid"`
	WeeklyHours         float64    `gorm:"column:weekly_hours;not null;default:0"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (Assignment) TableName() string {
	return "employee_assignments"
}

func validEmploymentStatus(s string) bool {
	switch s {
	case EmploymentActive, EmploymentOnLeave, EmploymentTerminated:
		return true
	}
	return false
}
