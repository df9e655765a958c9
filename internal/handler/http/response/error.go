package response

import (
	"errors"
	"net/http"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrNoShiftScheduled):
		BadRequest(w, "No shift scheduled for today", nil)
	case errors.Is(err, attendance.ErrTooEarly):
		BadRequest(w, "Too early to mark attendance for this shift", nil)
	case errors.Is(err, attendance.ErrShiftEnded):
		BadRequest(w, "Shift has already ended", nil)
	case errors.Is(err, attendance.ErrAlreadyCompleted):
		Conflict(w, "Attendance for today is already completed")
	case errors.Is(err, attendance.ErrSheetNotFound):
		NotFound(w, "Attendance sheet not found")
	case errors.Is(err, attendance.ErrSheetConflict):
		Conflict(w, "Attendance sheet was modified concurrently, please retry")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift code has no master entry")
	case errors.Is(err, shift.ErrCompositeShiftIncomplete):
		BadRequest(w, "Composite shift code references a missing shift", nil)
	case errors.Is(err, shift.ErrNoScheduleFound):
		NotFound(w, "No shift schedule found for this month")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
