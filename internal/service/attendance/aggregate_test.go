package attendance

import (
	"testing"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestRecomputeTotals(t *testing.T) {
	t.Parallel()

	records := []attendance.DayRecord{
		{Date: "2025-04-01", Status: attendance.StatusPresent, ShiftCode: "M"},
		{Date: "2025-04-02", Status: attendance.StatusAbsent, ShiftCode: "M"},
		{Date: "2025-04-03", Status: attendance.StatusOff, ShiftCode: "OFF"},
		{Date: "2025-04-04", Status: attendance.StatusSickLeave, ShiftCode: "M"},
		{Date: "2025-04-05", Status: attendance.StatusCasualLeaveOnOff, ShiftCode: "OFF"},
		{Date: "2025-04-06", Status: attendance.StatusHoliday, ShiftCode: "H"},
		{Date: "2025-04-07", Status: attendance.StatusPresent, ShiftCode: "M", OvertimeHours: 4.02},
	}

	totals := RecomputeTotals(records)

	assert.Equal(t, 2, totals.TotalPresent)
	assert.Equal(t, 1, totals.TotalAbsent)
	assert.Equal(t, 1, totals.TotalOff)
	assert.Equal(t, 2, totals.TotalLeave)
	assert.Equal(t, 1, totals.TotalHolidays)
	assert.Equal(t, 0, totals.DoubleShiftCredits)
	assert.InDelta(t, 4.02, totals.TotalOvertimeHours, 0.001)
	assert.Equal(t, 6, totals.PaidDays)
}

func TestRecomputeTotals_DoubleDutyCountsTwiceAndOffsetsAbsence(t *testing.T) {
	t.Parallel()

	records := []attendance.DayRecord{
		{Date: "2025-04-01", Status: attendance.StatusPresent, ShiftCode: "ME"},
		{Date: "2025-04-02", Status: attendance.StatusAbsent, ShiftCode: "M"},
		{Date: "2025-04-03", Status: attendance.StatusAbsent, ShiftCode: "M"},
	}

	totals := RecomputeTotals(records)

	assert.Equal(t, 2, totals.TotalPresent)
	assert.Equal(t, 1, totals.DoubleShiftCredits)
	// Historical rule: each double-shift credit offsets one absence.
	assert.Equal(t, 1, totals.TotalAbsent)
}

func TestRecomputeTotals_ReservedDDIsNotDoubleDuty(t *testing.T) {
	t.Parallel()

	records := []attendance.DayRecord{
		{Date: "2025-04-01", Status: attendance.StatusPresent, ShiftCode: "DD"},
	}

	totals := RecomputeTotals(records)

	assert.Equal(t, 1, totals.TotalPresent)
	assert.Equal(t, 0, totals.DoubleShiftCredits)
}

func TestRecomputeTotals_DuplicateDatesFirstWins(t *testing.T) {
	t.Parallel()

	records := []attendance.DayRecord{
		{Date: "2025-04-01", Status: attendance.StatusPresent, ShiftCode: "M"},
		{Date: "2025-04-01", Status: attendance.StatusAbsent, ShiftCode: "M"},
	}

	totals := RecomputeTotals(records)

	assert.Equal(t, 1, totals.TotalPresent)
	assert.Equal(t, 0, totals.TotalAbsent)
}

func TestRecomputeTotals_OvertimeSumRounded(t *testing.T) {
	t.Parallel()

	records := []attendance.DayRecord{
		{Date: "2025-04-01", Status: attendance.StatusPresent, ShiftCode: "M", OvertimeHours: 4.02},
		{Date: "2025-04-02", Status: attendance.StatusPresent, ShiftCode: "M", OvertimeHours: 3.333},
	}

	totals := RecomputeTotals(records)

	assert.InDelta(t, 7.35, totals.TotalOvertimeHours, 0.0001)
}

func TestRecomputeTotals_Idempotent(t *testing.T) {
	t.Parallel()

	records := []attendance.DayRecord{
		{Date: "2025-04-01", Status: attendance.StatusPresent, ShiftCode: "ME", OvertimeHours: 1.5},
		{Date: "2025-04-02", Status: attendance.StatusAbsent, ShiftCode: "M"},
		{Date: "2025-04-03", Status: attendance.StatusOff, ShiftCode: "OFF"},
	}

	first := RecomputeTotals(records)
	second := RecomputeTotals(records)

	assert.Equal(t, first, second)
}

func TestRecomputeTotals_EmptySheet(t *testing.T) {
	t.Parallel()

	totals := RecomputeTotals(nil)

	assert.Equal(t, attendance.MonthlyTotals{}, totals)
}
