package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/attendance"
	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	exportFn func(ctx context.Context, period string) ([]byte, error)
}

func (f *fakeAttendanceService) ClockIn(ctx context.Context, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}
func (f *fakeAttendanceService) ClockOut(ctx context.Context, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}
func (f *fakeAttendanceService) Correct(ctx context.Context, actorID, id string, req attendance.CorrectRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}
func (f *fakeAttendanceService) Approve(ctx context.Context, approverID, id string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}
func (f *fakeAttendanceService) GetAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}
func (f *fakeAttendanceService) GetByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}
func (f *fakeAttendanceService) SummarizeMonth(ctx context.Context, employeeID string, month, year int) (attendance.MonthSummary, error) {
	return attendance.MonthSummary{}, nil
}
func (f *fakeAttendanceService) ExportMonthlyReport(ctx context.Context, period string) ([]byte, error) {
	return f.exportFn(ctx, period)
}

func TestMonthlyReport_RenderSurvivesCallerCancellation(t *testing.T) {
	var renderErr error
	svc := &fakeAttendanceService{
		exportFn: func(ctx context.Context, period string) ([]byte, error) {
			renderErr = ctx.Err()
			return []byte("workbook"), nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/report/2026-03", nil).WithContext(ctx)
	c.Params = gin.Params{{Key: "period", Value: "2026-03"}}

	h.MonthlyReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, renderErr, "shared render must not inherit a caller's cancellation")
	assert.Equal(t, "workbook", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance-2026-03.xlsx")
}

func TestMonthlyReport_InvalidPeriod(t *testing.T) {
	svc := &fakeAttendanceService{
		exportFn: func(ctx context.Context, period string) ([]byte, error) {
			return nil, attendanceerrors.ErrInvalidPeriod
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/report/bad", nil)
	c.Params = gin.Params{{Key: "period", Value: "bad"}}

	h.MonthlyReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
