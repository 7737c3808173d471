package audit_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-workforce/internal/audit"
	auditMock "go-workforce/internal/audit/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error json.RawMessage `json:"error"`
}

func sampleEntry(action, entityType string) audit.Entry {
	return audit.Entry{
		ID:         uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityID:   uuid.New().String(),
		EntityName: "Production Supervisor",
		ActorID:    uuid.New().String(),
		OccurredAt: time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestAuditHandler_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := auditMock.NewMockRepository(ctrl)

	repo.EXPECT().
		ListRecent(gomock.Any(), 10).
		Return([]audit.Entry{
			sampleEntry("ROLE_CREATED", "org_role"),
			sampleEntry("ROLE_DELETED", "org_role"),
		}, nil)

	h := audit.NewHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/audit?limit=10", nil)

	h.ListRecent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)

	var rows []audit.EntryResponse
	assert.NoError(t, json.Unmarshal(env.Data, &rows))
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "ROLE_CREATED", rows[0].Action)
		assert.Equal(t, "2026-03-01T08:30:00Z", rows[0].OccurredAt)
	}
}

func TestAuditHandler_ListByEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := auditMock.NewMockRepository(ctrl)

	entry := sampleEntry("PAYROLL_PAID", "payroll")
	repo.EXPECT().
		ListByEntity(gomock.Any(), "payroll", entry.EntityID).
		Return([]audit.Entry{entry}, nil)

	h := audit.NewHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/audit/payroll/x", nil)
	c.Params = gin.Params{
		{Key: "entity_type", Value: "payroll"},
		{Key: "entity_id", Value: entry.EntityID},
	}

	h.ListByEntity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var rows []audit.EntryResponse
	assert.NoError(t, json.Unmarshal(env.Data, &rows))
	if assert.Len(t, rows, 1) {
		assert.Equal(t, entry.EntityID, rows[0].EntityID)
	}
}

func TestAuditHandler_ListRecent_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := auditMock.NewMockRepository(ctrl)

	repo.EXPECT().
		ListRecent(gomock.Any(), 50).
		Return(nil, errors.New("connection reset"))

	h := audit.NewHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/audit", nil)

	h.ListRecent(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
}
