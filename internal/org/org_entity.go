package org

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the top level of the responsibility tree. Children are reached
// through the back-references on Responsibility and SubResponsibility;
// there is no duplicated child-id bookkeeping to drift out of sync.
type Role struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Role) TableName() string {
	return "org_roles"
}

type Responsibility struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RoleID        uuid.UUID `gorm:"column:role_id;type:uuid;not null;index"`
	Name          string    `gorm:"column:name;type:varchar(120);not null"`
	Description   string    `gorm:"column:description;type:text"`
	CapacityHours float64   `gorm:"column:capacity_hours;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Responsibility) TableName() string {
	return "org_responsibilities"
}

type SubResponsibility struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ResponsibilityID uuid.UUID `gorm:"column:responsibility_id;type:uuid;not null;index"`
	Name             string    `gorm:"column:name;type:varchar(120);not null"`
	Description      string    `gorm:"column:description;type:text"`
	SLAHours         float64   `gorm:"column:sla_hours;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (SubResponsibility) TableName() string {
	return "org_sub_responsibilities"
}

// AssignedUser is the staffing view of one user attached to a
// responsibility, as reported by the owning user store.
type AssignedUser struct {
	UserID           string
	FullName         string
	CapacityHours    float64
	CurrentLoadHours float64
}

// AssignmentLookup is provided by the employee module. Coverage reporting
// depends only on this capability, not on the user store itself.
type AssignmentLookup interface {
	UsersForResponsibility(ctx context.Context, responsibilityID string) ([]AssignedUser, error)
}
