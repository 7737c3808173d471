package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusPaid       = "PAID"
	StatusFailed     = "FAILED"

	ComponentAllowance = "ALLOWANCE"
	ComponentDeduction = "DEDUCTION"
	ComponentBonus     = "BONUS"
)

// Payroll is one employee's pay for one (month, year) period. Gross and
// net are derived by ComputeSalary on every write; a PAID record is
// locked against further edits.
type Payroll struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payroll_period"`
	Month      int       `gorm:"column:month;not null;uniqueIndex:uq_payroll_period"`
	Year       int       `gorm:"column:year;not null;uniqueIndex:uq_payroll_period"`

	BasicSalary    decimal.Decimal `gorm:"column:basic_salary;type:numeric(14,2);not null;default:0"`
	OvertimeHours  decimal.Decimal `gorm:"column:overtime_hours;type:numeric(8,2);not null;default:0"`
	OvertimeRate   decimal.Decimal `gorm:"column:overtime_rate;type:numeric(14,2);not null;default:0"`
	OvertimeAmount decimal.Decimal `gorm:"column:overtime_amount;type:numeric(14,2);not null;default:0"`
	GrossSalary    decimal.Decimal `gorm:"column:gross_salary;type:numeric(14,2);not null;default:0"`
	NetSalary      decimal.Decimal `gorm:"column:net_salary;type:numeric(14,2);not null;default:0"`

	PresentDays int `gorm:"column:present_days;not null;default:0"`
	AbsentDays  int `gorm:"column:absent_days;not null;default:0"`
	LateDays    int `gorm:"column:late_days;not null;default:0"`
	HalfDays    int `gorm:"column:half_days;not null;default:0"`

	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	PaymentDate *time.Time `gorm:"column:payment_date;type:timestamptz"`
	ApprovedBy  *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	CreatedBy   uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Components []PayrollComponent `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type PayrollComponent struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID     uuid.UUID       `gorm:"column:payroll_id;type:uuid;not null;index"`
	ComponentType string          `gorm:"column:component_type;type:varchar(20);not null;index"`
	ComponentName string          `gorm:"column:component_name;type:varchar(120);not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (PayrollComponent) TableName() string {
	return "payroll_components"
}

// componentMaps splits the component rows back into the three maps the
// calculator consumes.
func componentMaps(components []PayrollComponent) (allowances, deductions, bonuses Components) {
	allowances = Components{}
	deductions = Components{}
	bonuses = Components{}
	for _, comp := range components {
		switch comp.ComponentType {
		case ComponentAllowance:
			allowances[comp.ComponentName] = comp.Amount
		case ComponentDeduction:
			deductions[comp.ComponentName] = comp.Amount
		case ComponentBonus:
			bonuses[comp.ComponentName] = comp.Amount
		}
	}
	return allowances, deductions, bonuses
}

func validStatusTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusProcessing
	case StatusProcessing:
		return to == StatusPaid || to == StatusFailed
	case StatusFailed:
		return to == StatusProcessing
	default:
		// PAID is terminal.
		return false
	}
}
