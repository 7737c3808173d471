package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID    string                     `json:"employee_id" binding:"required"`
	Month         int                        `json:"month" binding:"required,min=1,max=12"`
	Year          int                        `json:"year" binding:"required,min=2000"`
	BasicSalary   decimal.Decimal            `json:"basic_salary"`
	Allowances    map[string]decimal.Decimal `json:"allowances"`
	Deductions    map[string]decimal.Decimal `json:"deductions"`
	Bonuses       map[string]decimal.Decimal `json:"bonuses"`
	OvertimeHours decimal.Decimal            `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal            `json:"overtime_rate"`
}

type UpdatePayrollRequest struct {
	BasicSalary   *decimal.Decimal           `json:"basic_salary"`
	Allowances    map[string]decimal.Decimal `json:"allowances"`
	Deductions    map[string]decimal.Decimal `json:"deductions"`
	Bonuses       map[string]decimal.Decimal `json:"bonuses"`
	OvertimeHours *decimal.Decimal           `json:"overtime_hours"`
	OvertimeRate  *decimal.Decimal           `json:"overtime_rate"`
}

type UpdateStatusRequest struct {
	Status      string  `json:"status" binding:"required"`
	PaymentDate *string `json:"payment_date"`
	ApprovedBy  *string `json:"approved_by"`
}

type GeneratePayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type PayrollQueryFilter struct {
	Status string `form:"status"`
	Month  int    `form:"month"`
	Year   int    `form:"year"`
}

type ComponentResponse struct {
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type PayrollResponse struct {
	ID             string              `json:"id"`
	EmployeeID     string              `json:"employee_id"`
	Month          int                 `json:"month"`
	Year           int                 `json:"year"`
	BasicSalary    decimal.Decimal     `json:"basic_salary"`
	OvertimeHours  decimal.Decimal     `json:"overtime_hours"`
	OvertimeRate   decimal.Decimal     `json:"overtime_rate"`
	OvertimeAmount decimal.Decimal     `json:"overtime_amount"`
	GrossSalary    decimal.Decimal     `json:"gross_salary"`
	NetSalary      decimal.Decimal     `json:"net_salary"`
	PresentDays    int                 `json:"present_days"`
	AbsentDays     int                 `json:"absent_days"`
	LateDays       int                 `json:"late_days"`
	HalfDays       int                 `json:"half_days"`
	Status         string              `json:"status"`
	PaymentDate    *string             `json:"payment_date,omitempty"`
	ApprovedBy     *string             `json:"approved_by,omitempty"`
	CreatedBy      string              `json:"created_by"`
	Components     []ComponentResponse `json:"components,omitempty"`
}

type GenerateResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	IDs     []string `json:"ids"`
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:             p.ID.String(),
		EmployeeID:     p.EmployeeID.String(),
		Month:          p.Month,
		Year:           p.Year,
		BasicSalary:    p.BasicSalary,
		OvertimeHours:  p.OvertimeHours,
		OvertimeRate:   p.OvertimeRate,
		OvertimeAmount: p.OvertimeAmount,
		GrossSalary:    p.GrossSalary,
		NetSalary:      p.NetSalary,
		PresentDays:    p.PresentDays,
		AbsentDays:     p.AbsentDays,
		LateDays:       p.LateDays,
		HalfDays:       p.HalfDays,
		Status:         p.Status,
		CreatedBy:      p.CreatedBy.String(),
	}
	if p.PaymentDate != nil {
		v := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &v
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	for _, comp := range p.Components {
		resp.Components = append(resp.Components, ComponentResponse{
			Type:   comp.ComponentType,
			Name:   comp.ComponentName,
			Amount: comp.Amount,
		})
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}
