package attendance

import (
	"math"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
)

// RecomputeTotals reduces the full day-record sequence into monthly
// totals. It is pure and invoked after every sheet mutation; totals are
// never patched incrementally. Duplicate dates are ignored, first
// occurrence wins.
func RecomputeTotals(records []attendance.DayRecord) attendance.MonthlyTotals {
	var totals attendance.MonthlyTotals
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if seen[rec.Date] {
			continue
		}
		seen[rec.Date] = true

		switch rec.Status {
		case attendance.StatusPresent:
			if rec.IsDoubleDuty() {
				// A double-duty day is two effective work units.
				totals.TotalPresent += 2
				totals.DoubleShiftCredits++
			} else {
				totals.TotalPresent++
			}
		case attendance.StatusAbsent:
			totals.TotalAbsent++
		case attendance.StatusOff:
			totals.TotalOff++
		case attendance.StatusHoliday:
			totals.TotalHolidays++
		case attendance.StatusSickLeave, attendance.StatusCasualLeave,
			attendance.StatusSickLeaveOnOff, attendance.StatusCasualLeaveOnOff:
			totals.TotalLeave++
		}

		totals.TotalOvertimeHours += rec.OvertimeHours
	}

	// Historical accounting rule: each double-shift credit offsets one
	// absence. Kept for payroll compatibility, pending product review.
	totals.TotalAbsent -= totals.DoubleShiftCredits

	totals.TotalOvertimeHours = math.Round(totals.TotalOvertimeHours*100) / 100
	totals.PaidDays = totals.TotalPresent + totals.TotalOff + totals.TotalLeave + totals.TotalHolidays

	return totals
}
