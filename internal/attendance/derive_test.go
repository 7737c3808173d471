package attendance

import (
	"errors"
	"testing"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/stretchr/testify/assert"
)

func TestDeriveHours(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	derived, err := DeriveHours(clockIn, &clockOut, 8)
	assert.NoError(t, err)
	assert.Equal(t, 9.5, derived.TotalHours)
	assert.Equal(t, 1.5, derived.OvertimeHours)
}

func TestDeriveHours_NoOvertime(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

	derived, err := DeriveHours(clockIn, &clockOut, 8)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, derived.TotalHours)
	assert.Equal(t, 0.0, derived.OvertimeHours)
}

func TestDeriveHours_StillClockedIn(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	derived, err := DeriveHours(clockIn, nil, 8)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, derived.TotalHours)
	assert.Equal(t, 0.0, derived.OvertimeHours)
}

func TestDeriveHours_InvalidRange(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, clockOut := range []time.Time{clockIn, clockIn.Add(-time.Hour)} {
		out := clockOut
		_, err := DeriveHours(clockIn, &out, 8)
		assert.True(t, errors.Is(err, attendanceerrors.ErrInvalidTimeRange))
	}
}

func TestDeriveHours_DefaultStandard(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	clockOut := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	// Non-positive standard falls back to the 8 hour default.
	derived, err := DeriveHours(clockIn, &clockOut, 0)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, derived.TotalHours)
	assert.Equal(t, 1.0, derived.OvertimeHours)
}

func TestDeriveHours_RoundsToTwoDecimals(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(7*time.Hour + 20*time.Minute)

	derived, err := DeriveHours(clockIn, &clockOut, 8)
	assert.NoError(t, err)
	assert.Equal(t, 7.33, derived.TotalHours)
	assert.Equal(t, 0.0, derived.OvertimeHours)
}
