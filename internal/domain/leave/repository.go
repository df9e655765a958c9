package leave

import (
	"context"
	"time"
)

// LeaveRepository answers "is this employee on approved leave on this
// date". Read-only collaborator of the attendance engine.
type LeaveRepository interface {
	// GetApprovedOnDate returns the approved application covering date,
	// or nil when there is none.
	GetApprovedOnDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Application, error)
}
