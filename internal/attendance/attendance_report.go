package attendance

import (
	"bytes"
	"context"
	"fmt"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/xuri/excelize/v2"
)

// ExportMonthlyReport renders all records of a calendar month (period
// "YYYY-MM") as an xlsx workbook: one sheet of raw records, one sheet of
// per-employee hour totals.
func (s *service) ExportMonthlyReport(ctx context.Context, period string) ([]byte, error) {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidPeriod
	}
	end := start.AddDate(0, 1, -1)

	rows, err := s.repo.FindAllInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const recordsSheet = "Records"
	f.SetSheetName(f.GetSheetName(0), recordsSheet)

	headers := []string{"Employee ID", "Date", "Shift", "Clock In", "Clock Out", "Total Hours", "Overtime Hours", "Status", "Approved"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(recordsSheet, cell, h)
	}

	type summary struct {
		total    float64
		overtime float64
		days     int
	}
	perEmployee := make(map[string]*summary)

	for i, r := range rows {
		rowIdx := i + 2
		clockOut := ""
		if r.ClockOut != nil {
			clockOut = r.ClockOut.Format(time.RFC3339)
		}
		values := []any{
			r.EmployeeID.String(),
			r.AttendanceDate.Format("2006-01-02"),
			r.Shift,
			r.ClockIn.Format(time.RFC3339),
			clockOut,
			r.TotalHours,
			r.OvertimeHours,
			r.Status,
			r.IsApproved,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			f.SetCellValue(recordsSheet, cell, v)
		}

		sum := perEmployee[r.EmployeeID.String()]
		if sum == nil {
			sum = &summary{}
			perEmployee[r.EmployeeID.String()] = sum
		}
		sum.total += r.TotalHours
		sum.overtime += r.OvertimeHours
		sum.days++
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	f.SetCellValue(summarySheet, "A1", fmt.Sprintf("Attendance summary %s", period))
	f.SetCellValue(summarySheet, "A2", "Employee ID")
	f.SetCellValue(summarySheet, "B2", "Days")
	f.SetCellValue(summarySheet, "C2", "Total Hours")
	f.SetCellValue(summarySheet, "D2", "Overtime Hours")

	rowIdx := 3
	for id, sum := range perEmployee {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", rowIdx), id)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", rowIdx), sum.days)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", rowIdx), round2(sum.total))
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", rowIdx), round2(sum.overtime))
		rowIdx++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
