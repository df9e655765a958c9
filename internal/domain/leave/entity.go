package leave

import "time"

// Application is an approved leave application as seen by the
// attendance engine. The approval workflow lives elsewhere; only
// approved rows are ever surfaced here.
type Application struct {
	ID         string
	EmployeeID string
	CompanyID  string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
}

// ShortCode classifies the application for attendance statuses:
// "SL" for sick leave, "CL" for everything else.
func (a Application) ShortCode() string {
	if a.LeaveType == "Sick Leave" {
		return "SL"
	}
	return "CL"
}
