package org

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=org_repo.go -destination=mock/org_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRole(ctx context.Context, role *Role) error
	FindRoleByID(ctx context.Context, id string) (*Role, error)
	FindAllRoles(ctx context.Context) ([]Role, error)
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRoleCascade(ctx context.Context, id string) error

	CreateResponsibility(ctx context.Context, resp *Responsibility) error
	FindResponsibilityByID(ctx context.Context, id string) (*Responsibility, error)
	FindResponsibilitiesByRole(ctx context.Context, roleID string) ([]Responsibility, error)
	FindAllResponsibilities(ctx context.Context) ([]Responsibility, error)
	UpdateResponsibility(ctx context.Context, resp *Responsibility) error
	DeleteResponsibilityCascade(ctx context.Context, id string) error

	CreateSubResponsibility(ctx context.Context, sub *SubResponsibility) error
	FindSubResponsibilityByID(ctx context.Context, id string) (*SubResponsibility, error)
	FindSubResponsibilitiesByResponsibility(ctx context.Context, responsibilityID string) ([]SubResponsibility, error)
	FindAllSubResponsibilities(ctx context.Context) ([]SubResponsibility, error)
	UpdateSubResponsibility(ctx context.Context, sub *SubResponsibility) error
	DeleteSubResponsibility(ctx context.Context, id string) error

	// ReplaceAll swaps the entire tree for a snapshot import. Callers must
	// run it inside a transaction via WithTx.
	ReplaceAll(ctx context.Context, roles []Role, resps []Responsibility, subs []SubResponsibility) error
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

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) FindRoleByID(ctx context.Context, id string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) FindAllRoles(ctx context.Context) ([]Role, error) {
	var rows []Role
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// DeleteRoleCascade removes the role and everything it owns: first the
// grandchildren, then the children, then the role itself. Must run inside
// the caller's transaction so a failure leaves the tree untouched.
func (r *repository) DeleteRoleCascade(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	err := db.Exec(
		`DELETE FROM org_sub_responsibilities
		 WHERE responsibility_id IN (SELECT id FROM org_responsibilities WHERE role_id = ?)`,
		id,
	).Error
	if err != nil {
		return err
	}

	if err := db.Where("role_id = ?", id).Delete(&Responsibility{}).Error; err != nil {
		return err
	}

	return db.Delete(&Role{}, "id = ?", id).Error
}

func (r *repository) CreateResponsibility(ctx context.Context, resp *Responsibility) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *repository) FindResponsibilityByID(ctx context.Context, id string) (*Responsibility, error) {
	var resp Responsibility
	err := r.db.WithContext(ctx).First(&resp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *repository) FindResponsibilitiesByRole(ctx context.Context, roleID string) ([]Responsibility, error) {
	var rows []Responsibility
	err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllResponsibilities(ctx context.Context) ([]Responsibility, error) {
	var rows []Responsibility
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateResponsibility(ctx context.Context, resp *Responsibility) error {
	return r.db.WithContext(ctx).Save(resp).Error
}

func (r *repository) DeleteResponsibilityCascade(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("responsibility_id = ?", id).Delete(&SubResponsibility{}).Error; err != nil {
		return err
	}

	return db.Delete(&Responsibility{}, "id = ?", id).Error
}

func (r *repository) CreateSubResponsibility(ctx context.Context, sub *SubResponsibility) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) FindSubResponsibilityByID(ctx context.Context, id string) (*SubResponsibility, error) {
	var sub SubResponsibility
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) FindSubResponsibilitiesByResponsibility(ctx context.Context, responsibilityID string) ([]SubResponsibility, error) {
	var rows []SubResponsibility
	err := r.db.WithContext(ctx).
		Where("responsibility_id = ?", responsibilityID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllSubResponsibilities(ctx context.Context) ([]SubResponsibility, error) {
	var rows []SubResponsibility
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateSubResponsibility(ctx context.Context, sub *SubResponsibility) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *repository) DeleteSubResponsibility(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SubResponsibility{}, "id = ?", id).Error
}

func (r *repository) ReplaceAll(ctx context.Context, roles []Role, resps []Responsibility, subs []SubResponsibility) error {
	db := r.db.WithContext(ctx)

	if err := db.Exec(`DELETE FROM org_sub_responsibilities`).Error; err != nil {
		return err
	}
	if err := db.Exec(`DELETE FROM org_responsibilities`).Error; err != nil {
		return err
	}
	if err := db.Exec(`DELETE FROM org_roles`).Error; err != nil {
		return err
	}

	if len(roles) > 0 {
		if err := db.Create(&roles).Error; err != nil {
			return err
		}
	}
	if len(resps) > 0 {
		if err := db.Create(&resps).Error; err != nil {
			return err
		}
	}
	if len(subs) > 0 {
		if err := db.Create(&subs).Error; err != nil {
			return err
		}
	}

	return nil
}
