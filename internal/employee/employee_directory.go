package employee

import (
	"context"

	"go-workforce/internal/org"
	"go-workforce/internal/payroll"
)

// Directory adapts the employee store to the narrow read interfaces the
// other domains declare: org coverage, attendance derivation and
// payroll generation all consume it without knowing about employees.
type Directory struct {
	repo Repository
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) UsersForResponsibility(ctx context.Context, responsibilityID string) ([]org.AssignedUser, error) {
	rows, err := d.repo.FindAssignedRows(ctx, responsibilityID)
	if err != nil {
		return nil, err
	}
	users := make([]org.AssignedUser, len(rows))
	for i, row := range rows {
		users[i] = org.AssignedUser{
			UserID:           row.EmployeeID,
			FullName:         row.FullName,
			CapacityHours:    row.CapacityHours,
			CurrentLoadHours: row.CurrentLoadHours,
		}
	}
	return users, nil
}

func (d *Directory) StandardHoursPerDay(ctx context.Context, employeeID string) (float64, error) {
	row, err := d.repo.FindByID(ctx, employeeID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return row.StandardHoursPerDay, nil
}

func (d *Directory) ListPayrollTargets(ctx context.Context) ([]payroll.PayrollTarget, error) {
	rows, err := d.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	targets := make([]payroll.PayrollTarget, len(rows))
	for i, row := range rows {
		targets[i] = payroll.PayrollTarget{
			EmployeeID:   row.ID.String(),
			BasicSalary:  row.BasicSalary,
			OvertimeRate: row.OvertimeRate,
		}
	}
	return targets, nil
}
