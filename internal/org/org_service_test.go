package org

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-workforce/internal/audit"
	orgerrors "go-workforce/internal/org/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memRepo is an in-memory tree; good enough for exercising the service's
// cascade and snapshot semantics without a database.
type memRepo struct {
	roles map[string]Role
	resps map[string]Responsibility
	subs  map[string]SubResponsibility
}

func newMemRepo() *memRepo {
	return &memRepo{
		roles: map[string]Role{},
		resps: map[string]Responsibility{},
		subs:  map[string]SubResponsibility{},
	}
}

func (m *memRepo) WithTx(tx *sql.Tx) Repository { return m }

func (m *memRepo) CreateRole(ctx context.Context, role *Role) error {
	m.roles[role.ID.String()] = *role
	return nil
}

func (m *memRepo) FindRoleByID(ctx context.Context, id string) (*Role, error) {
	role, ok := m.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &role, nil
}

func (m *memRepo) FindAllRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRepo) UpdateRole(ctx context.Context, role *Role) error {
	m.roles[role.ID.String()] = *role
	return nil
}

func (m *memRepo) DeleteRoleCascade(ctx context.Context, id string) error {
	for respID, resp := range m.resps {
		if resp.RoleID.String() != id {
			continue
		}
		for subID, sub := range m.subs {
			if sub.ResponsibilityID.String() == respID {
				delete(m.subs, subID)
			}
		}
		delete(m.resps, respID)
	}
	delete(m.roles, id)
	return nil
}

func (m *memRepo) CreateResponsibility(ctx context.Context, resp *Responsibility) error {
	m.resps[resp.ID.String()] = *resp
	return nil
}

func (m *memRepo) FindResponsibilityByID(ctx context.Context, id string) (*Responsibility, error) {
	resp, ok := m.resps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &resp, nil
}

func (m *memRepo) FindResponsibilitiesByRole(ctx context.Context, roleID string) ([]Responsibility, error) {
	var out []Responsibility
	for _, r := range m.resps {
		if r.RoleID.String() == roleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) FindAllResponsibilities(ctx context.Context) ([]Responsibility, error) {
	var out []Responsibility
	for _, r := range m.resps {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRepo) UpdateResponsibility(ctx context.Context, resp *Responsibility) error {
	m.resps[resp.ID.String()] = *resp
	return nil
}

func (m *memRepo) DeleteResponsibilityCascade(ctx context.Context, id string) error {
	for subID, sub := range m.subs {
		if sub.ResponsibilityID.String() == id {
			delete(m.subs, subID)
		}
	}
	delete(m.resps, id)
	return nil
}

func (m *memRepo) CreateSubResponsibility(ctx context.Context, sub *SubResponsibility) error {
	m.subs[sub.ID.String()] = *sub
	return nil
}

func (m *memRepo) FindSubResponsibilityByID(ctx context.Context, id string) (*SubResponsibility, error) {
	sub, ok := m.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &sub, nil
}

func (m *memRepo) FindSubResponsibilitiesByResponsibility(ctx context.Context, responsibilityID string) ([]SubResponsibility, error) {
	var out []SubResponsibility
	for _, sub := range m.subs {
		if sub.ResponsibilityID.String() == responsibilityID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *memRepo) FindAllSubResponsibilities(ctx context.Context) ([]SubResponsibility, error) {
	var out []SubResponsibility
	for _, sub := range m.subs {
		out = append(out, sub)
	}
	return out, nil
}

func (m *memRepo) UpdateSubResponsibility(ctx context.Context, sub *SubResponsibility) error {
	m.subs[sub.ID.String()] = *sub
	return nil
}

func (m *memRepo) DeleteSubResponsibility(ctx context.Context, id string) error {
	delete(m.subs, id)
	return nil
}

func (m *memRepo) ReplaceAll(ctx context.Context, roles []Role, resps []Responsibility, subs []SubResponsibility) error {
	m.roles = map[string]Role{}
	m.resps = map[string]Responsibility{}
	m.subs = map[string]SubResponsibility{}
	for _, r := range roles {
		m.roles[r.ID.String()] = r
	}
	for _, r := range resps {
		m.resps[r.ID.String()] = r
	}
	for _, sub := range subs {
		m.subs[sub.ID.String()] = sub
	}
	return nil
}

type fakeAuditRepo struct {
	entries []audit.Entry
}

func (f *fakeAuditRepo) WithTx(tx *sql.Tx) audit.Repository { return f }
func (f *fakeAuditRepo) Append(ctx context.Context, entry *audit.Entry) error {
	f.entries = append(f.entries, *entry)
	return nil
}
func (f *fakeAuditRepo) ListRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	return f.entries, nil
}
func (f *fakeAuditRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]audit.Entry, error) {
	return nil, nil
}

type fakeLookup struct {
	users []AssignedUser
}

func (f *fakeLookup) UsersForResponsibility(ctx context.Context, responsibilityID string) ([]AssignedUser, error) {
	return f.users, nil
}

func expectTx(mock sqlmock.Sqlmock, n int) {
	for i := 0; i < n; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
}

func TestService_DeleteRole_Cascades(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMemRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewService(db, repo, auditRepo, &fakeLookup{})
	actorID := uuid.New().String()
	ctx := context.Background()

	expectTx(mock, 4)

	role, err := svc.CreateRole(ctx, actorID, CreateRoleRequest{Name: "Production Supervisor"})
	assert.NoError(t, err)

	resp, err := svc.CreateResponsibility(ctx, actorID, role.ID, CreateResponsibilityRequest{
		Name:          "Line QA",
		CapacityHours: 40,
	})
	assert.NoError(t, err)

	_, err = svc.CreateSubResponsibility(ctx, actorID, resp.ID, CreateSubResponsibilityRequest{
		Name:     "Defect triage",
		SLAHours: 4,
	})
	assert.NoError(t, err)

	assert.Len(t, repo.roles, 1)
	assert.Len(t, repo.resps, 1)
	assert.Len(t, repo.subs, 1)

	err = svc.DeleteRole(ctx, actorID, role.ID)
	assert.NoError(t, err)

	assert.Empty(t, repo.roles)
	assert.Empty(t, repo.resps)
	assert.Empty(t, repo.subs)

	actions := make([]string, len(auditRepo.entries))
	for i, e := range auditRepo.entries {
		actions[i] = e.Action
	}
	assert.Equal(t, []string{
		ActionRoleCreated,
		ActionRespCreated,
		ActionSubRespCreated,
		ActionRoleDeleted,
	}, actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_DeleteRole_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMemRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewService(db, repo, auditRepo, &fakeLookup{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.DeleteRole(context.Background(), uuid.New().String(), uuid.New().String())
	assert.True(t, errors.Is(err, orgerrors.ErrRoleNotFound))
	assert.Empty(t, auditRepo.entries, "failed mutation must not be audited")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CreateResponsibility_UnknownRole(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMemRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewService(db, repo, auditRepo, &fakeLookup{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.CreateResponsibility(context.Background(), uuid.New().String(), uuid.New().String(), CreateResponsibilityRequest{
		Name:          "orphan",
		CapacityHours: 10,
	})
	assert.True(t, errors.Is(err, orgerrors.ErrRoleNotFound))
	assert.Empty(t, auditRepo.entries)
	assert.Empty(t, repo.resps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetResponsibilitiesByRole_AfterDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMemRepo()
	svc := NewService(db, repo, &fakeAuditRepo{}, &fakeLookup{})
	actorID := uuid.New().String()
	ctx := context.Background()

	expectTx(mock, 3)

	role, err := svc.CreateRole(ctx, actorID, CreateRoleRequest{Name: "Shift Lead"})
	assert.NoError(t, err)
	created, err := svc.CreateResponsibility(ctx, actorID, role.ID, CreateResponsibilityRequest{Name: "Handover notes", CapacityHours: 5})
	assert.NoError(t, err)

	got, err := svc.GetResponsibilitiesByRole(ctx, role.ID)
	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, created.ID, got[0].ID)
	}

	err = svc.DeleteRole(ctx, actorID, role.ID)
	assert.NoError(t, err)

	got, err = svc.GetResponsibilitiesByRole(ctx, role.ID)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_DeleteRole_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newMemRepo(), &fakeAuditRepo{}, &fakeLookup{})

	err := svc.DeleteRole(context.Background(), uuid.New().String(), "not-a-uuid")
	assert.True(t, errors.Is(err, orgerrors.ErrInvalidRoleID))
}

func TestService_Queries_UnknownIDsYieldEmpty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newMemRepo(), &fakeAuditRepo{}, &fakeLookup{})
	ctx := context.Background()

	resps, err := svc.GetResponsibilitiesByRole(ctx, "garbage")
	assert.NoError(t, err)
	assert.Empty(t, resps)

	subs, err := svc.GetSubResponsibilitiesByResponsibility(ctx, "garbage")
	assert.NoError(t, err)
	assert.Empty(t, subs)
}

func TestService_Coverage(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	lookup := &fakeLookup{users: []AssignedUser{
		{UserID: uuid.New().String(), FullName: "Ayu", CapacityHours: 40, CurrentLoadHours: 10},
		{UserID: uuid.New().String(), FullName: "Budi", CapacityHours: 40, CurrentLoadHours: 30},
	}}
	svc := NewService(db, newMemRepo(), &fakeAuditRepo{}, lookup)

	cov, err := svc.Coverage(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Equal(t, 2, cov.AssignedUserCount)
	assert.Equal(t, 80.0, cov.TotalCapacityHours)
	assert.Equal(t, 40.0, cov.TotalCurrentLoadHours)
	assert.Equal(t, 50, cov.UtilizationPct)
}

func TestService_Coverage_UnknownResponsibility(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newMemRepo(), &fakeAuditRepo{}, &fakeLookup{})

	cov, err := svc.Coverage(context.Background(), "garbage")
	assert.NoError(t, err)
	assert.Equal(t, 0, cov.AssignedUserCount)
	assert.Equal(t, 0, cov.UtilizationPct)
}

func TestService_GetRoleTree(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMemRepo()
	svc := NewService(db, repo, &fakeAuditRepo{}, &fakeLookup{})
	actorID := uuid.New().String()
	ctx := context.Background()

	expectTx(mock, 4)

	role, err := svc.CreateRole(ctx, actorID, CreateRoleRequest{Name: "Quality Manager"})
	assert.NoError(t, err)
	emptyRole, err := svc.CreateRole(ctx, actorID, CreateRoleRequest{Name: "Trainee"})
	assert.NoError(t, err)
	resp, err := svc.CreateResponsibility(ctx, actorID, role.ID, CreateResponsibilityRequest{Name: "Incoming inspection", CapacityHours: 30})
	assert.NoError(t, err)
	sub, err := svc.CreateSubResponsibility(ctx, actorID, resp.ID, CreateSubResponsibilityRequest{Name: "Sampling plan", SLAHours: 12})
	assert.NoError(t, err)

	tree, err := svc.GetRoleTree(ctx)
	assert.NoError(t, err)
	assert.Len(t, tree, 2)

	nodes := map[string]RoleTreeNode{}
	for _, n := range tree {
		nodes[n.ID] = n
	}

	full := nodes[role.ID]
	if assert.Len(t, full.Responsibilities, 1) {
		assert.Equal(t, resp.ID, full.Responsibilities[0].ID)
		assert.Equal(t, 30.0, full.Responsibilities[0].CapacityHours)
		if assert.Len(t, full.Responsibilities[0].SubResponsibilities, 1) {
			assert.Equal(t, sub.ID, full.Responsibilities[0].SubResponsibilities[0].ID)
			assert.Equal(t, 12.0, full.Responsibilities[0].SubResponsibilities[0].SLAHours)
		}
	}

	// Childless levels come back as empty lists, not nulls.
	assert.NotNil(t, nodes[emptyRole.ID].Responsibilities)
	assert.Empty(t, nodes[emptyRole.ID].Responsibilities)
}

func TestService_ExportImport_Roundtrip(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	source := newMemRepo()
	svc := NewService(db, source, &fakeAuditRepo{}, &fakeLookup{})
	actorID := uuid.New().String()
	ctx := context.Background()

	expectTx(mock, 3)

	role, err := svc.CreateRole(ctx, actorID, CreateRoleRequest{Name: "Maintenance Lead"})
	assert.NoError(t, err)
	resp, err := svc.CreateResponsibility(ctx, actorID, role.ID, CreateResponsibilityRequest{Name: "Machine upkeep", CapacityHours: 20})
	assert.NoError(t, err)
	_, err = svc.CreateSubResponsibility(ctx, actorID, resp.ID, CreateSubResponsibilityRequest{Name: "Lubrication rounds", SLAHours: 8})
	assert.NoError(t, err)

	snap, err := svc.Export(ctx)
	assert.NoError(t, err)
	assert.Len(t, snap.Roles, 1)
	assert.Len(t, snap.Responsibilities, 1)
	assert.Len(t, snap.SubResponsibilities, 1)
	assert.False(t, snap.ExportedAt.IsZero())

	// Import into a fresh store.
	target := newMemRepo()
	targetAudit := &fakeAuditRepo{}
	targetSvc := NewService(db, target, targetAudit, &fakeLookup{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = targetSvc.Import(ctx, actorID, snap)
	assert.NoError(t, err)
	assert.Len(t, target.roles, 1)
	assert.Len(t, target.resps, 1)
	assert.Len(t, target.subs, 1)

	if assert.Len(t, targetAudit.entries, 1) {
		assert.Equal(t, ActionSnapshotImported, targetAudit.entries[0].Action)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Import_InvalidSnapshots(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newMemRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewService(db, repo, auditRepo, &fakeLookup{})
	ctx := context.Background()
	actorID := uuid.New().String()

	// Missing collections.
	err := svc.Import(ctx, actorID, Snapshot{})
	assert.True(t, errors.Is(err, orgerrors.ErrInvalidSnapshot))

	// Malformed id.
	err = svc.Import(ctx, actorID, Snapshot{
		Roles:               []RoleSnapshot{{ID: "nope", Name: "X"}},
		Responsibilities:    []ResponsibilitySnapshot{},
		SubResponsibilities: []SubResponsibilitySnapshot{},
	})
	assert.True(t, errors.Is(err, orgerrors.ErrInvalidSnapshot))

	// Responsibility pointing at a role outside the snapshot.
	err = svc.Import(ctx, actorID, Snapshot{
		Roles: []RoleSnapshot{},
		Responsibilities: []ResponsibilitySnapshot{
			{ID: uuid.New().String(), RoleID: uuid.New().String(), Name: "orphan"},
		},
		SubResponsibilities: []SubResponsibilitySnapshot{},
	})
	assert.True(t, errors.Is(err, orgerrors.ErrSnapshotDanglingRef))

	assert.Empty(t, auditRepo.entries)
	assert.Empty(t, repo.roles)
}
