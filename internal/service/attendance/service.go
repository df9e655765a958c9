package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/leave"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
	"github.com/kelola-hr/attendance-engine-go/internal/pkg/clock"
)

// maxMarkAttempts bounds the optimistic-concurrency retry loop for
// near-simultaneous punches against the same sheet.
const maxMarkAttempts = 3

type AttendanceServiceImpl struct {
	attendance.SheetRepository
	shift.ShiftRepository
	leave.LeaveRepository
	clock clock.Clock
}

func NewAttendanceService(
	sheetRepo attendance.SheetRepository,
	shiftRepo shift.ShiftRepository,
	leaveRepo leave.LeaveRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		SheetRepository: sheetRepo,
		ShiftRepository: shiftRepo,
		LeaveRepository: leaveRepo,
		clock:           clk,
	}
}

// MarkAttendance implements attendance.AttendanceService.
//
// One call runs the whole unit: backfill missed days, resolve today's
// punch, recompute monthly totals, persist once. On a version conflict
// the unit is recomputed from fresh state and retried.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	employeeID, companyID, err := employeeClaims(ctx)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	now := a.clock.Now()
	month, year := int(now.Month()), now.Year()

	master, err := a.ShiftRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to load shift master: %w", err)
	}

	sched, err := a.ShiftRepository.GetMonthSchedule(ctx, employeeID, month, year, companyID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to load month schedule: %w", err)
	}
	if sched == nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrNoShiftScheduled
	}

	for attempt := 0; attempt < maxMarkAttempts; attempt++ {
		sheet, err := a.SheetRepository.GetByEmployeeMonth(ctx, employeeID, month, year, companyID)
		if err != nil {
			return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to load attendance sheet: %w", err)
		}

		created := false
		if sheet == nil {
			// Sheets are created lazily on the first punch of a month.
			sheet = &attendance.Sheet{
				EmployeeID:    employeeID,
				CompanyID:     companyID,
				Month:         month,
				Year:          year,
				FinancialYear: financialYearLabel(month, year),
			}
			created = true
		}

		if err := fillMissingDays(ctx, sheet, sched, master, a.LeaveRepository, now); err != nil {
			return attendance.MarkAttendanceResponse{}, err
		}

		rec, action, err := applyPunch(sheet, sched, master, now, req.Note)
		if err != nil {
			return attendance.MarkAttendanceResponse{}, err
		}

		sheet.Totals = RecomputeTotals(sheet.Records)

		var saved attendance.Sheet
		if created {
			saved, err = a.SheetRepository.Create(ctx, *sheet)
		} else {
			saved, err = a.SheetRepository.Update(ctx, *sheet)
		}
		if err != nil {
			if errors.Is(err, attendance.ErrSheetConflict) {
				continue
			}
			return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to persist attendance sheet: %w", err)
		}

		return attendance.MarkAttendanceResponse{
			Action: action,
			Record: mapDayRecord(*rec),
			Totals: saved.Totals,
		}, nil
	}

	return attendance.MarkAttendanceResponse{}, attendance.ErrSheetConflict
}

// applyPunch runs the NoPunch -> CheckedIn -> CheckedOut transition for
// today's date and returns the affected record. A non-empty note is
// stamped on the record for whichever punch carried it.
func applyPunch(sheet *attendance.Sheet, sched *shift.MonthSchedule, master []shift.Shift, now time.Time, note string) (*attendance.DayRecord, string, error) {
	today := now.Format("2006-01-02")
	nowMins := now.Hour()*60 + now.Minute()

	if rec := sheet.RecordFor(today); rec != nil {
		if rec.HasCheckedOut() {
			return nil, "", attendance.ErrAlreadyCompleted
		}
		if rec.HasCheckedIn() {
			checkOut(rec, nowMins)
			if note != "" {
				rec.Note = note
			}
			return rec, attendance.ActionCheckOut, nil
		}
	}

	// A punch the morning after an open midnight-crossing shift closes
	// yesterday's record instead of opening a new day.
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if prev := sheet.RecordFor(yesterday); prev != nil && prev.HasCheckedIn() && !prev.HasCheckedOut() {
		if ToMinutes(prev.ShiftEndTime) < ToMinutes(prev.ShiftStartTime) {
			checkOut(prev, nowMins)
			if note != "" {
				prev.Note = note
			}
			return prev, attendance.ActionCheckOut, nil
		}
	}

	code := sched.CodeFor(now.Day())
	if code == "" || code == shift.CodeOff || code == shift.CodeHoliday {
		return nil, "", attendance.ErrNoShiftScheduled
	}

	win, err := ResolveShift(code, master)
	if err != nil {
		return nil, "", err
	}

	end := win.EndMinutes
	if win.CrossesMidnight() {
		end += minutesPerDay
	}
	if nowMins < win.StartMinutes-startGraceMinutes {
		return nil, "", attendance.ErrTooEarly
	}
	if nowMins > end {
		return nil, "", attendance.ErrShiftEnded
	}

	rec := attendance.DayRecord{
		Date:             today,
		Status:           attendance.StatusPresent,
		CheckInTime:      FormatClock(nowMins),
		CheckOutTime:     attendance.NoTime,
		OfficialDuration: attendance.NoDuration,
		ActualDuration:   attendance.NoDuration,
		ShiftCode:        code,
		ShiftStartTime:   win.StartTime,
		ShiftEndTime:     win.EndTime,
		IsLate:           nowMins > win.StartMinutes+startGraceMinutes,
		Note:             note,
	}
	sheet.Records = append(sheet.Records, rec)
	return sheet.LastRecord(), attendance.ActionCheckIn, nil
}

// checkOut completes a checked-in record: stamps the punch, computes
// both durations against the shift window stored at check-in time, and
// evaluates overtime.
func checkOut(rec *attendance.DayRecord, nowMins int) {
	rec.CheckOutTime = FormatClock(nowMins)

	actualStr, actualMins := ActualDuration(rec.CheckInTime, rec.CheckOutTime)
	rec.ActualDuration = actualStr

	win := shift.Window{
		Code:         rec.ShiftCode,
		StartTime:    rec.ShiftStartTime,
		EndTime:      rec.ShiftEndTime,
		StartMinutes: ToMinutes(rec.ShiftStartTime),
		EndMinutes:   ToMinutes(rec.ShiftEndTime),
	}
	officialStr, officialMins := OfficialDuration(rec.CheckInTime, rec.CheckOutTime, win)
	rec.OfficialDuration = officialStr

	if actualMins > 0 && officialMins > 0 {
		rec.IsOvertime, rec.OvertimeHours = EvaluateOvertime(actualMins, officialMins)
	}
}

// GetMySheet implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMySheet(ctx context.Context, q attendance.SheetQuery) (attendance.SheetResponse, error) {
	employeeID, companyID, err := employeeClaims(ctx)
	if err != nil {
		return attendance.SheetResponse{}, err
	}
	return a.getSheet(ctx, employeeID, companyID, q)
}

// GetSheet implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetSheet(ctx context.Context, employeeID string, q attendance.SheetQuery) (attendance.SheetResponse, error) {
	companyID, err := companyClaim(ctx)
	if err != nil {
		return attendance.SheetResponse{}, err
	}
	return a.getSheet(ctx, employeeID, companyID, q)
}

func (a *AttendanceServiceImpl) getSheet(ctx context.Context, employeeID, companyID string, q attendance.SheetQuery) (attendance.SheetResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.SheetResponse{}, err
	}

	sheet, err := a.SheetRepository.GetByEmployeeMonth(ctx, employeeID, q.Month, q.Year, companyID)
	if err != nil {
		return attendance.SheetResponse{}, fmt.Errorf("failed to get attendance sheet: %w", err)
	}
	if sheet == nil {
		return attendance.SheetResponse{}, attendance.ErrSheetNotFound
	}

	return mapSheetToResponse(*sheet), nil
}

func employeeClaims(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	cid, ok := claims["company_id"].(string)
	if !ok || cid == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	eid, ok := claims["employee_id"].(string)
	if !ok || eid == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return eid, cid, nil
}

func companyClaim(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	cid, ok := claims["company_id"].(string)
	if !ok || cid == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return cid, nil
}

// mapSheetToResponse converts a Sheet entity to SheetResponse
func mapSheetToResponse(s attendance.Sheet) attendance.SheetResponse {
	records := make([]attendance.DayRecordResponse, 0, len(s.Records))
	for _, rec := range s.Records {
		records = append(records, mapDayRecord(rec))
	}

	return attendance.SheetResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Month:         s.Month,
		Year:          s.Year,
		FinancialYear: s.FinancialYear,
		Records:       records,
		Totals:        s.Totals,
		UpdatedAt:     s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapDayRecord(rec attendance.DayRecord) attendance.DayRecordResponse {
	return attendance.DayRecordResponse{
		Date:             rec.Date,
		Status:           rec.Status,
		CheckInTime:      rec.CheckInTime,
		CheckOutTime:     rec.CheckOutTime,
		OfficialDuration: rec.OfficialDuration,
		ActualDuration:   rec.ActualDuration,
		ShiftCode:        rec.ShiftCode,
		ShiftStartTime:   rec.ShiftStartTime,
		ShiftEndTime:     rec.ShiftEndTime,
		IsLate:           rec.IsLate,
		IsOvertime:       rec.IsOvertime,
		OvertimeHours:    rec.OvertimeHours,
		Note:             rec.Note,
	}
}

// financialYearLabel renders the April-March fiscal year a sheet
// belongs to, e.g. April 2025 -> "2025-26".
func financialYearLabel(month, year int) string {
	if month >= 4 {
		return fmt.Sprintf("%d-%02d", year, (year+1)%100)
	}
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}
