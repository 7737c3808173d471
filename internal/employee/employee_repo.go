package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// AssignedRow is one joined assignment row: who holds the
// responsibility and how loaded they already are across all of their
// assignments.
type AssignedRow struct {
	EmployeeID       string
	FullName         string
	CapacityHours    float64
	CurrentLoadHours float64
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindAllActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error

	CreateAssignment(ctx context.Context, a *Assignment) error
	DeleteAssignment(ctx context.Context, employeeID, responsibilityID string) (int64, error)
	FindAssignmentsByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)
	FindAssignedRows(ctx context.Context, responsibilityID string) ([]AssignedRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction. The session
// shares the parent gorm config; only the connection is swapped, so there
// is no failure path and writes can never silently escape the tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).Order("employee_number ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("employment_status = ?", EmploymentActive).
		Order("employee_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) CreateAssignment(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) DeleteAssignment(ctx context.Context, employeeID, responsibilityID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND responsibility_id = ?", employeeID, responsibilityID).
		Delete(&Assignment{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindAssignmentsByEmployee(ctx context.Context, employeeID string) ([]Assignment, error) {
	var rows []Assignment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// FindAssignedRows joins holders of one responsibility with their total
// load across every responsibility they are assigned to.
func (r *repository) FindAssignedRows(ctx context.Context, responsibilityID string) ([]AssignedRow, error) {
	var rows []AssignedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id::text AS employee_id,
			e.full_name,
			e.capacity_hours_per_week AS capacity_hours,
			COALESCE(load.total, 0) AS current_load_hours
		FROM employee_assignments a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN (
			SELECT employee_id, SUM(weekly_hours) AS total
			FROM employee_assignments
			GROUP BY employee_id
		) load ON load.employee_id = e.id
		WHERE a.responsibility_id = ?
		ORDER BY e.full_name ASC
	`, responsibilityID).Scan(&rows).Error
	return rows, err
}
