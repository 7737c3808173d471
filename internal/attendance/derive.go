package attendance

import (
	"math"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"
)

// DefaultStandardHoursPerDay is the threshold above which worked hours
// count as overtime.
const DefaultStandardHoursPerDay = 8.0

type DerivedHours struct {
	TotalHours    float64
	OvertimeHours float64
}

// DeriveHours computes worked and overtime hours for one attendance
// record. It is the only place these fields are ever computed: every
// write path that sets or corrects a timestamp recomputes from the source
// timestamps rather than accumulating deltas.
//
// A nil clockOut means the record is still open and both outputs are 0.
// A clockOut at or before clockIn is an input error, never a negative
// duration.
func DeriveHours(clockIn time.Time, clockOut *time.Time, standardHoursPerDay float64) (DerivedHours, error) {
	if clockOut == nil {
		return DerivedHours{}, nil
	}
	if !clockOut.After(clockIn) {
		return DerivedHours{}, attendanceerrors.ErrInvalidTimeRange
	}
	if standardHoursPerDay <= 0 {
		standardHoursPerDay = DefaultStandardHoursPerDay
	}

	total := round2(clockOut.Sub(clockIn).Hours())
	overtime := round2(math.Max(0, total-standardHoursPerDay))

	return DerivedHours{TotalHours: total, OvertimeHours: overtime}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
