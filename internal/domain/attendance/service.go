package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records the caller's punch for today: the first
	// punch of a day checks in, the second checks out. Missed days
	// since the last record are backfilled and monthly totals are
	// recomputed before anything is persisted.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// GetMySheet retrieves the authenticated employee's sheet.
	GetMySheet(ctx context.Context, q SheetQuery) (SheetResponse, error)

	// GetSheet retrieves any employee's sheet (manager/admin).
	GetSheet(ctx context.Context, employeeID string, q SheetQuery) (SheetResponse, error)
}
