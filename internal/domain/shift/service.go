package shift

import "context"

// MasterService exposes the read-only shift data the attendance engine
// consumes, for clients that render schedules.
type MasterService interface {
	// ListShifts returns the caller's company shift master.
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	// GetMySchedule returns the authenticated employee's month schedule.
	GetMySchedule(ctx context.Context, month int, year int) (MonthScheduleResponse, error)
}
