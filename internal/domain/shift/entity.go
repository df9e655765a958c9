package shift

import "time"

// Reserved schedule codes. "OFF" and "H" are non-working markers handled
// by callers; "DD" is a legacy marker that resolves as a plain master
// lookup, never as a composite code.
const (
	CodeOff        = "OFF"
	CodeHoliday    = "H"
	CodeDoubleDuty = "DD"
)

// Shift is one entry of the shift master: a named work window.
type Shift struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window is the effective start/end resolved for one day. For a
// double-duty code it spans from the first shift's start to the second
// shift's end.
type Window struct {
	Code         string
	StartTime    string
	EndTime      string
	StartMinutes int
	EndMinutes   int
}

// CrossesMidnight reports whether the window ends on the next calendar
// day (end numerically before start).
func (w Window) CrossesMidnight() bool {
	return w.EndMinutes < w.StartMinutes
}

// MonthSchedule assigns a shift code to each day of one month for one
// employee. DayCodes is indexed by day-of-month (1..31); index 0 is
// unused.
type MonthSchedule struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Month      int
	Year       int
	DayCodes   [32]string
}

// CodeFor returns the assigned code for a day-of-month, or "" when the
// day is out of range or unassigned.
func (m *MonthSchedule) CodeFor(day int) string {
	if day < 1 || day > 31 {
		return ""
	}
	return m.DayCodes[day]
}
