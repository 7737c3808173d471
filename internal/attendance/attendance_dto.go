package attendance

import "time"

type ClockInRequest struct {
	Shift    string  `json:"shift"`
	Location *string `json:"location"`
	Method   string  `json:"method"`
	Notes    *string `json:"notes"`
}

type ClockOutRequest struct {
	Shift    string  `json:"shift"`
	Location *string `json:"location"`
	Method   *string `json:"method"`
	Notes    *string `json:"notes"`
}

// CorrectRequest is an admin-side timestamp correction. Either timestamp
// may be patched; derived hours are always recomputed from the result.
type CorrectRequest struct {
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	Shift          string  `json:"shift"`
	ClockIn        string  `json:"clock_in"`
	ClockInLoc     *string `json:"clock_in_location,omitempty"`
	ClockInMethod  string  `json:"clock_in_method"`
	ClockOut       *string `json:"clock_out,omitempty"`
	ClockOutLoc    *string `json:"clock_out_location,omitempty"`
	ClockOutMethod *string `json:"clock_out_method,omitempty"`
	TotalHours     float64 `json:"total_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	Status         string  `json:"status"`
	BreakMinutes   int     `json:"break_minutes"`
	IsApproved     bool    `json:"is_approved"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Shift:          a.Shift,
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		ClockInLoc:     a.ClockInLoc,
		ClockInMethod:  a.ClockInMethod,
		ClockOutLoc:    a.ClockOutLoc,
		ClockOutMethod: a.ClockOutMethod,
		TotalHours:     a.TotalHours,
		OvertimeHours:  a.OvertimeHours,
		Status:         a.Status,
		BreakMinutes:   a.BreakMinutes,
		IsApproved:     a.IsApproved,
		Notes:          a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if a.ApprovedBy != nil {
		v := a.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
