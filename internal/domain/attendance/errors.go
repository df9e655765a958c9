package attendance

import "errors"

// Attendance domain errors. All map to rejected operations; none leave
// the sheet partially mutated.
var (
	ErrNoShiftScheduled = errors.New("no shift scheduled for today")
	ErrTooEarly         = errors.New("too early to mark attendance for this shift")
	ErrShiftEnded       = errors.New("shift has already ended")
	ErrAlreadyCompleted = errors.New("attendance for today is already completed")

	ErrSheetNotFound = errors.New("attendance sheet not found")
	ErrSheetConflict = errors.New("attendance sheet was modified concurrently")
)
