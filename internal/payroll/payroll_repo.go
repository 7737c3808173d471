package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	ReplaceComponents(ctx context.Context, payrollID string, components []PayrollComponent) error
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Components").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("month = ? AND year = ?", month, year).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	q := r.db.WithContext(ctx).Preload("Components")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Month != 0 {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}

	var rows []Payroll
	err := q.Order("year DESC, month DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) ReplaceComponents(ctx context.Context, payrollID string, components []PayrollComponent) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("payroll_id = ?", payrollID).Delete(&PayrollComponent{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	return db.Create(&components).Error
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Components").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("payroll_id = ?", id).Delete(&PayrollComponent{}).Error; err != nil {
		return err
	}
	return db.Delete(&Payroll{}, "id = ?", id).Error
}
