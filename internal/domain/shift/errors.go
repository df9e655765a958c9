package shift

import "errors"

var (
	ErrShiftNotFound            = errors.New("shift code has no master entry")
	ErrCompositeShiftIncomplete = errors.New("composite shift code references a missing shift")
	ErrNoScheduleFound          = errors.New("no shift schedule found for this month")
)
