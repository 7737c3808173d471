package org

import (
	"context"
	"database/sql"
	"math"
	"sync"
	"time"

	"go-workforce/internal/audit"
	orgerrors "go-workforce/internal/org/errors"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
)

// Audit actions. One entry is appended per successful mutation, in the
// same transaction as the state change.
const (
	ActionRoleCreated      = "ROLE_CREATED"
	ActionRoleUpdated      = "ROLE_UPDATED"
	ActionRoleDeleted      = "ROLE_DELETED"
	ActionRespCreated      = "RESPONSIBILITY_CREATED"
	ActionRespUpdated      = "RESPONSIBILITY_UPDATED"
	ActionRespDeleted      = "RESPONSIBILITY_DELETED"
	ActionSubRespCreated   = "SUB_RESPONSIBILITY_CREATED"
	ActionSubRespUpdated   = "SUB_RESPONSIBILITY_UPDATED"
	ActionSubRespDeleted   = "SUB_RESPONSIBILITY_DELETED"
	ActionSnapshotImported = "ORG_SNAPSHOT_IMPORTED"

	entityTypeRole    = "org_role"
	entityTypeResp    = "org_responsibility"
	entityTypeSubResp = "org_sub_responsibility"
	entityTypeOrgTree = "org_tree"
)

//go:generate mockgen -source=org_service.go -destination=mock/org_service_mock.go -package=mock
type Service interface {
	CreateRole(ctx context.Context, actorID string, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, actorID, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, actorID, id string) error

	CreateResponsibility(ctx context.Context, actorID, roleID string, req CreateResponsibilityRequest) (ResponsibilityResponse, error)
	UpdateResponsibility(ctx context.Context, actorID, id string, req UpdateResponsibilityRequest) (ResponsibilityResponse, error)
	DeleteResponsibility(ctx context.Context, actorID, id string) error

	CreateSubResponsibility(ctx context.Context, actorID, responsibilityID string, req CreateSubResponsibilityRequest) (SubResponsibilityResponse, error)
	UpdateSubResponsibility(ctx context.Context, actorID, id string, req UpdateSubResponsibilityRequest) (SubResponsibilityResponse, error)
	DeleteSubResponsibility(ctx context.Context, actorID, id string) error

	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetRoleTree(ctx context.Context) ([]RoleTreeNode, error)
	GetResponsibilitiesByRole(ctx context.Context, roleID string) ([]ResponsibilityResponse, error)
	GetSubResponsibilitiesByResponsibility(ctx context.Context, responsibilityID string) ([]SubResponsibilityResponse, error)
	Coverage(ctx context.Context, responsibilityID string) (CoverageResponse, error)

	Export(ctx context.Context) (Snapshot, error)
	Import(ctx context.Context, actorID string, snapshot Snapshot) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  audit.Repository
	lookup AssignmentLookup

	// Serializes mutators. Cascade deletes read-then-write three tables;
	// interleaved cascades on overlapping subtrees must not observe each
	// other's partial state.
	mu sync.Mutex
}

func NewService(db *sql.DB, repo Repository, auditRepo audit.Repository, lookup AssignmentLookup) Service {
	return &service{db: db, repo: repo, audit: auditRepo, lookup: lookup}
}

func (s *service) CreateRole(ctx context.Context, actorID string, req CreateRoleRequest) (RoleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role := &Role{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := qtx.CreateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRoleError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionRoleCreated, entityTypeRole, role.ID.String(), role.Name, actorID); err != nil {
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	return mapRoleToResponse(*role, nil), nil
}

func (s *service) UpdateRole(ctx context.Context, actorID, id string, req UpdateRoleRequest) (RoleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return RoleResponse{}, orgerrors.ErrInvalidRoleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindRoleByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRoleError(err)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}

	if err := qtx.UpdateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRoleError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionRoleUpdated, entityTypeRole, role.ID.String(), role.Name, actorID); err != nil {
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	resps, err := s.repo.FindResponsibilitiesByRole(ctx, id)
	if err != nil {
		resps = nil
	}
	return mapRoleToResponse(*role, resps), nil
}

func (s *service) DeleteRole(ctx context.Context, actorID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return orgerrors.ErrInvalidRoleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindRoleByID(ctx, id)
	if err != nil {
		return mapRoleError(err)
	}

	if err := qtx.DeleteRoleCascade(ctx, id); err != nil {
		return mapRoleError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionRoleDeleted, entityTypeRole, role.ID.String(), role.Name, actorID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) CreateResponsibility(ctx context.Context, actorID, roleID string, req CreateResponsibilityRequest) (ResponsibilityResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roleUUID, err := uuid.Parse(roleID)
	if err != nil {
		return ResponsibilityResponse{}, orgerrors.ErrInvalidRoleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ResponsibilityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Parent must exist before we attach a child to it.
	if _, err := qtx.FindRoleByID(ctx, roleID); err != nil {
		return ResponsibilityResponse{}, mapRoleError(err)
	}

	resp := &Responsibility{
		ID:            uuid.New(),
		RoleID:        roleUUID,
		Name:          req.Name,
		Description:   req.Description,
		CapacityHours: req.CapacityHours,
	}

	if err := qtx.CreateResponsibility(ctx, resp); err != nil {
		return ResponsibilityResponse{}, mapResponsibilityError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionRespCreated, entityTypeResp, resp.ID.String(), resp.Name, actorID); err != nil {
		return ResponsibilityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ResponsibilityResponse{}, err
	}

	return mapResponsibilityToResponse(*resp, nil), nil
}

func (s *service) UpdateResponsibility(ctx context.Context, actorID, id string, req UpdateResponsibilityRequest) (ResponsibilityResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return ResponsibilityResponse{}, orgerrors.ErrInvalidResponsibilityID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ResponsibilityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	resp, err := qtx.FindResponsibilityByID(ctx, id)
	if err != nil {
		return ResponsibilityResponse{}, mapResponsibilityError(err)
	}

	if req.Name != nil {
		resp.Name = *req.Name
	}
	if req.Description != nil {
		resp.Description = *req.Description
	}
	if req.CapacityHours != nil {
		resp.CapacityHours = *req.CapacityHours
	}

	if err := qtx.UpdateResponsibility(ctx, resp); err != nil {
		return ResponsibilityResponse{}, mapResponsibilityError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionRespUpdated, entityTypeResp, resp.ID.String(), resp.Name, actorID); err != nil {
		return ResponsibilityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ResponsibilityResponse{}, err
	}

	subs, err := s.repo.FindSubResponsibilitiesByResponsibility(ctx, id)
	if err != nil {
		subs = nil
	}
	return mapResponsibilityToResponse(*resp, subs), nil
}

func (s *service) DeleteResponsibility(ctx context.Context, actorID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return orgerrors.ErrInvalidResponsibilityID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	resp, err := qtx.FindResponsibilityByID(ctx, id)
	if err != nil {
		return mapResponsibilityError(err)
	}

	if err := qtx.DeleteResponsibilityCascade(ctx, id); err != nil {
		return mapResponsibilityError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionRespDeleted, entityTypeResp, resp.ID.String(), resp.Name, actorID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) CreateSubResponsibility(ctx context.Context, actorID, responsibilityID string, req CreateSubResponsibilityRequest) (SubResponsibilityResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	respUUID, err := uuid.Parse(responsibilityID)
	if err != nil {
		return SubResponsibilityResponse{}, orgerrors.ErrInvalidResponsibilityID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubResponsibilityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindResponsibilityByID(ctx, responsibilityID); err != nil {
		return SubResponsibilityResponse{}, mapResponsibilityError(err)
	}

	sub := &SubResponsibility{
		ID:               uuid.New(),
		ResponsibilityID: respUUID,
		Name:             req.Name,
		Description:      req.Description,
		SLAHours:         req.SLAHours,
	}

	if err := qtx.CreateSubResponsibility(ctx, sub); err != nil {
		return SubResponsibilityResponse{}, mapSubResponsibilityError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionSubRespCreated, entityTypeSubResp, sub.ID.String(), sub.Name, actorID); err != nil {
		return SubResponsibilityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SubResponsibilityResponse{}, err
	}

	return mapSubResponsibilityToResponse(*sub), nil
}

func (s *service) UpdateSubResponsibility(ctx context.Context, actorID, id string, req UpdateSubResponsibilityRequest) (SubResponsibilityResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return SubResponsibilityResponse{}, orgerrors.ErrInvalidSubResponsibilityID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubResponsibilityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sub, err := qtx.FindSubResponsibilityByID(ctx, id)
	if err != nil {
		return SubResponsibilityResponse{}, mapSubResponsibilityError(err)
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.SLAHours != nil {
		sub.SLAHours = *req.SLAHours
	}

	if err := qtx.UpdateSubResponsibility(ctx, sub); err != nil {
		return SubResponsibilityResponse{}, mapSubResponsibilityError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionSubRespUpdated, entityTypeSubResp, sub.ID.String(), sub.Name, actorID); err != nil {
		return SubResponsibilityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SubResponsibilityResponse{}, err
	}

	return mapSubResponsibilityToResponse(*sub), nil
}

func (s *service) DeleteSubResponsibility(ctx context.Context, actorID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return orgerrors.ErrInvalidSubResponsibilityID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sub, err := qtx.FindSubResponsibilityByID(ctx, id)
	if err != nil {
		return mapSubResponsibilityError(err)
	}

	if err := qtx.DeleteSubResponsibility(ctx, id); err != nil {
		return mapSubResponsibilityError(err)
	}

	if err := s.appendAudit(ctx, tx, ActionSubRespDeleted, entityTypeSubResp, sub.ID.String(), sub.Name, actorID); err != nil {
		return err
	}

	return tx.Commit()
}

// Queries are read-only and tolerant: unknown ids yield empty results so
// read paths stay robust against partially-loaded state.

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAllRoles(ctx)
	if err != nil {
		return nil, err
	}

	resps, err := s.repo.FindAllResponsibilities(ctx)
	if err != nil {
		return nil, err
	}
	byRole := make(map[uuid.UUID][]Responsibility)
	for _, r := range resps {
		byRole[r.RoleID] = append(byRole[r.RoleID], r)
	}

	out := make([]RoleResponse, len(roles))
	for i, role := range roles {
		out[i] = mapRoleToResponse(role, byRole[role.ID])
	}
	return out, nil
}

// GetRoleTree returns the whole hierarchy nested three levels deep,
// built from three full scans instead of per-parent queries.
func (s *service) GetRoleTree(ctx context.Context) ([]RoleTreeNode, error) {
	roles, err := s.repo.FindAllRoles(ctx)
	if err != nil {
		return nil, err
	}
	resps, err := s.repo.FindAllResponsibilities(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.repo.FindAllSubResponsibilities(ctx)
	if err != nil {
		return nil, err
	}

	subsByResp := make(map[uuid.UUID][]SubResponsibilityNode)
	for _, sub := range subs {
		subsByResp[sub.ResponsibilityID] = append(subsByResp[sub.ResponsibilityID], SubResponsibilityNode{
			ID:          sub.ID.String(),
			Name:        sub.Name,
			Description: sub.Description,
			SLAHours:    sub.SLAHours,
		})
	}

	respsByRole := make(map[uuid.UUID][]ResponsibilityNode)
	for _, resp := range resps {
		children := subsByResp[resp.ID]
		if children == nil {
			children = []SubResponsibilityNode{}
		}
		respsByRole[resp.RoleID] = append(respsByRole[resp.RoleID], ResponsibilityNode{
			ID:                  resp.ID.String(),
			Name:                resp.Name,
			Description:         resp.Description,
			CapacityHours:       resp.CapacityHours,
			SubResponsibilities: children,
		})
	}

	tree := make([]RoleTreeNode, len(roles))
	for i, role := range roles {
		children := respsByRole[role.ID]
		if children == nil {
			children = []ResponsibilityNode{}
		}
		tree[i] = RoleTreeNode{
			ID:               role.ID.String(),
			Name:             role.Name,
			Description:      role.Description,
			Responsibilities: children,
		}
	}
	return tree, nil
}

func (s *service) GetResponsibilitiesByRole(ctx context.Context, roleID string) ([]ResponsibilityResponse, error) {
	if _, err := uuid.Parse(roleID); err != nil {
		return []ResponsibilityResponse{}, nil
	}

	rows, err := s.repo.FindResponsibilitiesByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	out := make([]ResponsibilityResponse, len(rows))
	for i, resp := range rows {
		subs, err := s.repo.FindSubResponsibilitiesByResponsibility(ctx, resp.ID.String())
		if err != nil {
			return nil, err
		}
		out[i] = mapResponsibilityToResponse(resp, subs)
	}
	return out, nil
}

func (s *service) GetSubResponsibilitiesByResponsibility(ctx context.Context, responsibilityID string) ([]SubResponsibilityResponse, error) {
	if _, err := uuid.Parse(responsibilityID); err != nil {
		return []SubResponsibilityResponse{}, nil
	}

	rows, err := s.repo.FindSubResponsibilitiesByResponsibility(ctx, responsibilityID)
	if err != nil {
		return nil, err
	}

	out := make([]SubResponsibilityResponse, len(rows))
	for i, sub := range rows {
		out[i] = mapSubResponsibilityToResponse(sub)
	}
	return out, nil
}

func (s *service) Coverage(ctx context.Context, responsibilityID string) (CoverageResponse, error) {
	cov := CoverageResponse{ResponsibilityID: responsibilityID}

	if _, err := uuid.Parse(responsibilityID); err != nil {
		return cov, nil
	}

	users, err := s.lookup.UsersForResponsibility(ctx, responsibilityID)
	if err != nil {
		return CoverageResponse{}, err
	}

	var capacity, load float64
	for _, u := range users {
		capacity += u.CapacityHours
		load += u.CurrentLoadHours
	}

	cov.AssignedUserCount = len(users)
	cov.TotalCapacityHours = capacity
	cov.TotalCurrentLoadHours = load
	cov.UtilizationPct = int(math.Round(100 * load / math.Max(capacity, 1)))

	return cov, nil
}

func (s *service) Export(ctx context.Context) (Snapshot, error) {
	roles, err := s.repo.FindAllRoles(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	resps, err := s.repo.FindAllResponsibilities(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	subs, err := s.repo.FindAllSubResponsibilities(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Roles:               make([]RoleSnapshot, len(roles)),
		Responsibilities:    make([]ResponsibilitySnapshot, len(resps)),
		SubResponsibilities: make([]SubResponsibilitySnapshot, len(subs)),
		ExportedAt:          time.Now().UTC(),
	}
	for i, r := range roles {
		snap.Roles[i] = RoleSnapshot{ID: r.ID.String(), Name: r.Name, Description: r.Description}
	}
	for i, r := range resps {
		snap.Responsibilities[i] = ResponsibilitySnapshot{
			ID: r.ID.String(), RoleID: r.RoleID.String(),
			Name: r.Name, Description: r.Description, CapacityHours: r.CapacityHours,
		}
	}
	for i, sub := range subs {
		snap.SubResponsibilities[i] = SubResponsibilitySnapshot{
			ID: sub.ID.String(), ResponsibilityID: sub.ResponsibilityID.String(),
			Name: sub.Name, Description: sub.Description, SLAHours: sub.SLAHours,
		}
	}

	return snap, nil
}

func (s *service) Import(ctx context.Context, actorID string, snapshot Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles, resps, subs, err := validateSnapshot(snapshot)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.ReplaceAll(ctx, roles, resps, subs); err != nil {
		return err
	}

	if err := s.appendAudit(ctx, tx, ActionSnapshotImported, entityTypeOrgTree, "", "organization tree", actorID); err != nil {
		return err
	}

	return tx.Commit()
}

// validateSnapshot rejects snapshots missing any collection and snapshots
// whose children reference parents outside the snapshot itself.
func validateSnapshot(snapshot Snapshot) ([]Role, []Responsibility, []SubResponsibility, error) {
	if snapshot.Roles == nil || snapshot.Responsibilities == nil || snapshot.SubResponsibilities == nil {
		return nil, nil, nil, orgerrors.ErrInvalidSnapshot
	}

	roles := make([]Role, len(snapshot.Roles))
	roleIDs := make(map[string]struct{}, len(snapshot.Roles))
	for i, r := range snapshot.Roles {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, nil, nil, orgerrors.ErrInvalidSnapshot
		}
		roles[i] = Role{ID: id, Name: r.Name, Description: r.Description}
		roleIDs[r.ID] = struct{}{}
	}

	resps := make([]Responsibility, len(snapshot.Responsibilities))
	respIDs := make(map[string]struct{}, len(snapshot.Responsibilities))
	for i, r := range snapshot.Responsibilities {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, nil, nil, orgerrors.ErrInvalidSnapshot
		}
		roleID, err := uuid.Parse(r.RoleID)
		if err != nil {
			return nil, nil, nil, orgerrors.ErrInvalidSnapshot
		}
		if _, ok := roleIDs[r.RoleID]; !ok {
			return nil, nil, nil, orgerrors.ErrSnapshotDanglingRef
		}
		resps[i] = Responsibility{
			ID: id, RoleID: roleID,
			Name: r.Name, Description: r.Description, CapacityHours: r.CapacityHours,
		}
		respIDs[r.ID] = struct{}{}
	}

	subs := make([]SubResponsibility, len(snapshot.SubResponsibilities))
	for i, sub := range snapshot.SubResponsibilities {
		id, err := uuid.Parse(sub.ID)
		if err != nil {
			return nil, nil, nil, orgerrors.ErrInvalidSnapshot
		}
		respID, err := uuid.Parse(sub.ResponsibilityID)
		if err != nil {
			return nil, nil, nil, orgerrors.ErrInvalidSnapshot
		}
		if _, ok := respIDs[sub.ResponsibilityID]; !ok {
			return nil, nil, nil, orgerrors.ErrSnapshotDanglingRef
		}
		subs[i] = SubResponsibility{
			ID: id, ResponsibilityID: respID,
			Name: sub.Name, Description: sub.Description, SLAHours: sub.SLAHours,
		}
	}

	return roles, resps, subs, nil
}

func (s *service) appendAudit(ctx context.Context, tx *sql.Tx, action, entityType, entityID, entityName, actorID string) error {
	if actorID == "" {
		actorID = contextutil.GetActorID(ctx)
	}
	return s.audit.WithTx(tx).Append(ctx, &audit.Entry{
		ID:         uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})
}

func mapRoleToResponse(role Role, resps []Responsibility) RoleResponse {
	ids := make([]string, len(resps))
	for i, r := range resps {
		ids[i] = r.ID.String()
	}
	return RoleResponse{
		ID:                role.ID.String(),
		Name:              role.Name,
		Description:       role.Description,
		ResponsibilityIDs: ids,
		CreatedAt:         role.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         role.UpdatedAt.Format(time.RFC3339),
	}
}

func mapResponsibilityToResponse(resp Responsibility, subs []SubResponsibility) ResponsibilityResponse {
	ids := make([]string, len(subs))
	for i, sub := range subs {
		ids[i] = sub.ID.String()
	}
	return ResponsibilityResponse{
		ID:                   resp.ID.String(),
		RoleID:               resp.RoleID.String(),
		Name:                 resp.Name,
		Description:          resp.Description,
		CapacityHours:        resp.CapacityHours,
		SubResponsibilityIDs: ids,
	}
}

func mapSubResponsibilityToResponse(sub SubResponsibility) SubResponsibilityResponse {
	return SubResponsibilityResponse{
		ID:               sub.ID.String(),
		ResponsibilityID: sub.ResponsibilityID.String(),
		Name:             sub.Name,
		Description:      sub.Description,
		SLAHours:         sub.SLAHours,
	}
}
