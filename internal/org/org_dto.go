package org

import "time"

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateRoleRequest is a typed patch: nil fields are left untouched.
type UpdateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateResponsibilityRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	CapacityHours float64 `json:"capacity_hours" binding:"gte=0"`
}

type UpdateResponsibilityRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	CapacityHours *float64 `json:"capacity_hours" binding:"omitempty,gte=0"`
}

type CreateSubResponsibilityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	SLAHours    float64 `json:"sla_hours" binding:"gte=0"`
}

type UpdateSubResponsibilityRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	SLAHours    *float64 `json:"sla_hours" binding:"omitempty,gte=0"`
}

type RoleResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ResponsibilityIDs []string `json:"responsibility_ids"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type ResponsibilityResponse struct {
	ID                   string   `json:"id"`
	RoleID               string   `json:"role_id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	CapacityHours        float64  `json:"capacity_hours"`
	SubResponsibilityIDs []string `json:"sub_responsibility_ids"`
}

type SubResponsibilityResponse struct {
	ID               string  `json:"id"`
	ResponsibilityID string  `json:"responsibility_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	SLAHours         float64 `json:"sla_hours"`
}

// RoleTreeNode is the fully nested hierarchy view.
type RoleTreeNode struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	Responsibilities []ResponsibilityNode `json:"responsibilities"`
}

type ResponsibilityNode struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Description         string                  `json:"description"`
	CapacityHours       float64                 `json:"capacity_hours"`
	SubResponsibilities []SubResponsibilityNode `json:"sub_responsibilities"`
}

type SubResponsibilityNode struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SLAHours    float64 `json:"sla_hours"`
}

type CoverageResponse struct {
	ResponsibilityID      string  `json:"responsibility_id"`
	AssignedUserCount     int     `json:"assigned_user_count"`
	TotalCapacityHours    float64 `json:"total_capacity_hours"`
	TotalCurrentLoadHours float64 `json:"total_current_load_hours"`
	UtilizationPct        int     `json:"utilization_pct"`
}

// Snapshot is the persisted backup/restore shape of the whole tree.
type Snapshot struct {
	Roles               []RoleSnapshot              `json:"roles"`
	Responsibilities    []ResponsibilitySnapshot    `json:"responsibilities"`
	SubResponsibilities []SubResponsibilitySnapshot `json:"subResponsibilities"`
	ExportedAt          time.Time                   `json:"exportedAt"`
}

type RoleSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ResponsibilitySnapshot struct {
	ID            string  `json:"id"`
	RoleID        string  `json:"role_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	CapacityHours float64 `json:"capacity_hours"`
}

type SubResponsibilitySnapshot struct {
	ID               string  `json:"id"`
	ResponsibilityID string  `json:"responsibility_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	SLAHours         float64 `json:"sla_hours"`
}
