package shift

import "context"

// ShiftRepository reads the shift master and monthly schedules. The
// engine never writes either; schedule upkeep belongs to the HR admin
// surface.
type ShiftRepository interface {
	// ListByCompany returns the full shift master for a company.
	ListByCompany(ctx context.Context, companyID string) ([]Shift, error)

	// GetMonthSchedule returns the per-day shift assignment for an
	// employee's month, or nil when none has been published.
	GetMonthSchedule(ctx context.Context, employeeID string, month int, year int, companyID string) (*MonthSchedule, error)
}
