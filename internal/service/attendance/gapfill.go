package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/leave"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
)

// fillMissingDays synthesizes a record for every date between the last
// recorded day and today (exclusive both ends), so the sheet never has
// silent date gaps. For a fresh sheet the backfill starts at day 1 of
// the month. Runs before today's punch is processed.
func fillMissingDays(ctx context.Context, sheet *attendance.Sheet, sched *shift.MonthSchedule, master []shift.Shift, leaveRepo leave.LeaveRepository, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if last := sheet.LastRecord(); last != nil {
		lastDate, err := time.ParseInLocation("2006-01-02", last.Date, now.Location())
		if err != nil {
			return fmt.Errorf("corrupt day record date %q: %w", last.Date, err)
		}
		start = lastDate.AddDate(0, 0, 1)
	}

	for d := start; d.Before(today); d = d.AddDate(0, 0, 1) {
		rec, err := synthesizeDay(ctx, sheet, sched, master, leaveRepo, d)
		if err != nil {
			return err
		}
		sheet.Records = append(sheet.Records, rec)
	}

	return nil
}

// synthesizeDay classifies one missed day from the shift schedule and
// approved-leave data. No punches occurred, so punch and duration
// fields carry their sentinels.
func synthesizeDay(ctx context.Context, sheet *attendance.Sheet, sched *shift.MonthSchedule, master []shift.Shift, leaveRepo leave.LeaveRepository, d time.Time) (attendance.DayRecord, error) {
	code := sched.CodeFor(d.Day())
	rec := attendance.DayRecord{
		Date:             d.Format("2006-01-02"),
		Status:           attendance.StatusAbsent,
		CheckInTime:      attendance.NoTime,
		CheckOutTime:     attendance.NoTime,
		OfficialDuration: attendance.NoDuration,
		ActualDuration:   attendance.NoDuration,
		ShiftCode:        code,
	}

	app, err := leaveRepo.GetApprovedOnDate(ctx, sheet.EmployeeID, d, sheet.CompanyID)
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to look up leave for %s: %w", rec.Date, err)
	}

	switch {
	case code == shift.CodeHoliday:
		rec.Status = attendance.StatusHoliday
	case code == shift.CodeOff || code == "":
		// Unassigned days are treated as off days.
		rec.Status = attendance.StatusOff
		if app != nil {
			rec.Status = app.ShortCode() + "(OFF)"
		}
	case app != nil:
		rec.Status = app.ShortCode()
	default:
		// Worked day with no punches: absent. Keep the shift window for
		// history views when it still resolves.
		if win, err := ResolveShift(code, master); err == nil {
			rec.ShiftStartTime = win.StartTime
			rec.ShiftEndTime = win.EndTime
		} else {
			slog.Warn("could not resolve shift for missed day", "date", rec.Date, "code", code, "error", err)
		}
	}

	return rec, nil
}
