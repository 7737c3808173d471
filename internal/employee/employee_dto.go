package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Password       string `json:"password" binding:"required"`
	RoleID         string `json:"role_id"`

	BasicSalary          decimal.Decimal `json:"basic_salary"`
	OvertimeRate         decimal.Decimal `json:"overtime_rate"`
	StandardHoursPerDay  float64         `json:"standard_hours_per_day"`
	CapacityHoursPerWeek float64         `json:"capacity_hours_per_week"`

	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status"`
}

type UpdateEmployeeRequest struct {
	FullName             *string          `json:"full_name"`
	Email                *string          `json:"email"`
	Phone                *string          `json:"phone"`
	RoleID               *string          `json:"role_id"`
	BasicSalary          *decimal.Decimal `json:"basic_salary"`
	OvertimeRate         *decimal.Decimal `json:"overtime_rate"`
	StandardHoursPerDay  *float64         `json:"standard_hours_per_day"`
	CapacityHoursPerWeek *float64         `json:"capacity_hours_per_week"`
	EmploymentStatus     *string          `json:"employment_status"`
}

type AssignRequest struct {
	ResponsibilityID    string  `json:"responsibility_id" binding:"required"`
	SubResponsibilityID *string `json:"sub_responsibility_id"`
	WeeklyHours         float64 `json:"weekly_hours" binding:"required,gt=0"`
}

type EmployeeResponse struct {
	ID                   string          `json:"id"`
	EmployeeNumber       string          `json:"employee_number"`
	FullName             string          `json:"full_name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone,omitempty"`
	RoleID               *string         `json:"role_id,omitempty"`
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	OvertimeRate         decimal.Decimal `json:"overtime_rate"`
	StandardHoursPerDay  float64         `json:"standard_hours_per_day"`
	CapacityHoursPerWeek float64         `json:"capacity_hours_per_week"`
	HireDate             string          `json:"hire_date"`
	EmploymentStatus     string          `json:"employment_status"`
}

type AssignmentResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	ResponsibilityID    string  `json:"responsibility_id"`
	SubResponsibilityID *string `json:"sub_responsibility_id,omitempty"`
	WeeklyHours         float64 `json:"weekly_hours"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                   e.ID.String(),
		EmployeeNumber:       e.EmployeeNumber,
		FullName:             e.FullName,
		Email:                e.Email,
		Phone:                e.Phone,
		BasicSalary:          e.BasicSalary,
		OvertimeRate:         e.OvertimeRate,
		StandardHoursPerDay:  e.StandardHoursPerDay,
		CapacityHoursPerWeek: e.CapacityHoursPerWeek,
		HireDate:             e.HireDate.Format(time.DateOnly),
		EmploymentStatus:     e.EmploymentStatus,
	}
	if e.RoleID != nil {
		v := e.RoleID.String()
		resp.RoleID = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}

func mapAssignmentToResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.EmployeeID.String(),
		ResponsibilityID: a.ResponsibilityID.String(),
		WeeklyHours:      a.WeeklyHours,
	}
	if a.SubResponsibilityID != nil {
		v := a.SubResponsibilityID.String()
		resp.SubResponsibilityID = &v
	}
	return resp
}
