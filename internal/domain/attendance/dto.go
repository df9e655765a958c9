package attendance

import (
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Punch actions reported back to the caller.
const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

type MarkAttendanceRequest struct {
	Note string `json:"note,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SheetQuery struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (q *SheetQuery) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(q.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayRecordResponse struct {
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	CheckInTime      string  `json:"check_in_time"`
	CheckOutTime     string  `json:"check_out_time"`
	OfficialDuration string  `json:"official_duration"`
	ActualDuration   string  `json:"actual_duration"`
	ShiftCode        string  `json:"shift_code,omitempty"`
	ShiftStartTime   string  `json:"shift_start_time,omitempty"`
	ShiftEndTime     string  `json:"shift_end_time,omitempty"`
	IsLate           bool    `json:"is_late"`
	IsOvertime       bool    `json:"is_overtime"`
	OvertimeHours    float64 `json:"overtime_hours"`
	Note             string  `json:"note,omitempty"`
}

type MarkAttendanceResponse struct {
	Action string            `json:"action"`
	Record DayRecordResponse `json:"record"`
	Totals MonthlyTotals     `json:"totals"`
}

type SheetResponse struct {
	ID            string              `json:"id"`
	EmployeeID    string              `json:"employee_id"`
	Month         int                 `json:"month"`
	Year          int                 `json:"year"`
	FinancialYear string              `json:"financial_year"`
	Records       []DayRecordResponse `json:"records"`
	Totals        MonthlyTotals       `json:"totals"`
	UpdatedAt     string              `json:"updated_at"`
}
