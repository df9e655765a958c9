package attendance

import (
	"math"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
)

const (
	// Grace windows for official duration: a punch within these bounds
	// snaps to the scheduled shift boundary.
	startGraceMinutes = 15
	endGraceMinutes   = 30

	// Overtime is not credited until this much excess over the official
	// duration is worked in a single day.
	overtimeThresholdMinutes = 240
)

// actualMinutes is the raw punch-to-punch delta, midnight aware: an end
// numerically before the start is treated as next-day.
func actualMinutes(checkIn, checkOut int) int {
	if checkOut < checkIn {
		checkOut += minutesPerDay
	}
	return checkOut - checkIn
}

// ActualDuration computes the raw punch-to-punch duration. Returns the
// "--" sentinel and 0 minutes when either punch is missing.
func ActualDuration(checkIn, checkOut string) (string, int) {
	if isNoTime(checkIn) || isNoTime(checkOut) {
		return attendance.NoDuration, 0
	}
	mins := actualMinutes(ToMinutes(checkIn), ToMinutes(checkOut))
	return FormatDuration(mins), mins
}

// OfficialDuration computes the shift-aligned duration used by payroll:
// each punch is snapped to its shift boundary when inside the grace
// window, then the midnight-aware delta is taken. A non-positive
// snapped interval yields the "--" sentinel (corrupt data guard).
func OfficialDuration(checkIn, checkOut string, win shift.Window) (string, int) {
	if isNoTime(checkIn) || isNoTime(checkOut) {
		return attendance.NoDuration, 0
	}

	start := ToMinutes(checkIn)
	if start >= win.StartMinutes-startGraceMinutes && start <= win.StartMinutes+startGraceMinutes {
		start = win.StartMinutes
	}

	end := ToMinutes(checkOut)
	if end >= win.EndMinutes && end <= win.EndMinutes+endGraceMinutes {
		end = win.EndMinutes
	}

	if end < start {
		end += minutesPerDay
	}

	mins := end - start
	if mins <= 0 {
		return attendance.NoDuration, 0
	}
	return FormatDuration(mins), mins
}

// EvaluateOvertime flags a completed day whose actual work exceeds the
// official duration by more than the threshold.
func EvaluateOvertime(actualMins, officialMins int) (bool, float64) {
	extra := actualMins - officialMins
	if extra <= overtimeThresholdMinutes {
		return false, 0
	}
	return true, roundHours(extra)
}

func roundHours(mins int) float64 {
	return math.Round(float64(mins)/60*100) / 100
}

func isNoTime(s string) bool {
	return s == "" || s == attendance.NoTime
}
