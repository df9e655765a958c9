package attendance

import (
	"time"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
)

// Day statuses. Leave statuses carry an "(OFF)" suffix when the leave
// falls on a scheduled off day.
const (
	StatusPresent          = "Present"
	StatusAbsent           = "Absent"
	StatusOff              = "OFF"
	StatusSickLeave        = "SL"
	StatusCasualLeave      = "CL"
	StatusSickLeaveOnOff   = "SL(OFF)"
	StatusCasualLeaveOnOff = "CL(OFF)"
	StatusHoliday          = "Holiday"
)

// Sentinels for not-yet-available values. Downstream consumers must
// treat these as "not available", never as zero.
const (
	NoTime     = "none"
	NoDuration = "--"
)

// DayRecord is one calendar date within a sheet. Date is the unique key
// within the sheet ("2006-01-02").
type DayRecord struct {
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

func (d DayRecord) HasCheckedIn() bool {
	return d.CheckInTime != "" && d.CheckInTime != NoTime
}

func (d DayRecord) HasCheckedOut() bool {
	return d.CheckOutTime != "" && d.CheckOutTime != NoTime
}

// IsDoubleDuty reports whether the record was worked on a composite
// (two-shift) code. The reserved "DD" code is a plain shift, not a
// composite.
func (d DayRecord) IsDoubleDuty() bool {
	return d.Status == StatusPresent && len(d.ShiftCode) == 2 && d.ShiftCode != shift.CodeDoubleDuty
}

// MonthlyTotals are always derived from the full day-record sequence.
// TotalAbsent subtracts DoubleShiftCredits; see the aggregator.
type MonthlyTotals struct {
	TotalPresent       int     `json:"total_present"`
	TotalAbsent        int     `json:"total_absent"`
	TotalOff           int     `json:"total_off"`
	TotalLeave         int     `json:"total_leave"`
	TotalHolidays      int     `json:"total_holidays"`
	DoubleShiftCredits int     `json:"double_shift_credits"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	PaidDays           int     `json:"paid_days"`
}

// Sheet is the attendance document for one (employee, month, year).
// Version backs optimistic concurrency at the storage layer.
type Sheet struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	Month         int
	Year          int
	FinancialYear string
	Records       []DayRecord
	Totals        MonthlyTotals
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecordFor returns a pointer to the record for date, or nil.
func (s *Sheet) RecordFor(date string) *DayRecord {
	for i := range s.Records {
		if s.Records[i].Date == date {
			return &s.Records[i]
		}
	}
	return nil
}

// LastRecord returns the chronologically last record, or nil for an
// empty sheet. Records are kept in non-decreasing date order.
func (s *Sheet) LastRecord() *DayRecord {
	if len(s.Records) == 0 {
		return nil
	}
	return &s.Records[len(s.Records)-1]
}
