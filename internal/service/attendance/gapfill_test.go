package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kelola-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/leave"
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	apps map[string]leave.Application // keyed by "2006-01-02"
	err  error
}

func (f *fakeLeaveRepo) GetApprovedOnDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*leave.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	if app, ok := f.apps[date.Format("2006-01-02")]; ok {
		return &app, nil
	}
	return nil, nil
}

func testSchedule(month, year int, codes map[int]string) *shift.MonthSchedule {
	ms := &shift.MonthSchedule{EmployeeID: "emp-1", CompanyID: "co-1", Month: month, Year: year}
	for day, code := range codes {
		ms.DayCodes[day] = code
	}
	return ms
}

func TestFillMissingDays(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{
		EmployeeID: "emp-1",
		CompanyID:  "co-1",
		Month:      4,
		Year:       2025,
		Records: []attendance.DayRecord{
			{Date: "2025-04-01", Status: attendance.StatusPresent, CheckInTime: "09:00", CheckOutTime: "17:00"},
		},
	}
	sched := testSchedule(4, 2025, map[int]string{
		1: "M", 2: "M", 3: "OFF", 4: "M", 5: "M",
	})
	leaveRepo := &fakeLeaveRepo{apps: map[string]leave.Application{
		"2025-04-04": {EmployeeID: "emp-1", LeaveType: "Sick Leave", Status: "approved"},
	}}
	now := time.Date(2025, 4, 5, 9, 5, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), leaveRepo, now)

	require.NoError(t, err)
	require.Len(t, sheet.Records, 4)

	assert.Equal(t, "2025-04-02", sheet.Records[1].Date)
	assert.Equal(t, attendance.StatusAbsent, sheet.Records[1].Status)
	assert.Equal(t, "2025-04-03", sheet.Records[2].Date)
	assert.Equal(t, attendance.StatusOff, sheet.Records[2].Status)
	assert.Equal(t, "2025-04-04", sheet.Records[3].Date)
	assert.Equal(t, attendance.StatusSickLeave, sheet.Records[3].Status)

	// No punches occurred on synthesized days.
	for _, rec := range sheet.Records[1:] {
		assert.Equal(t, attendance.NoTime, rec.CheckInTime)
		assert.Equal(t, attendance.NoTime, rec.CheckOutTime)
		assert.Equal(t, attendance.NoDuration, rec.OfficialDuration)
		assert.Equal(t, attendance.NoDuration, rec.ActualDuration)
	}
}

func TestFillMissingDays_FreshSheetStartsAtDayOne(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{EmployeeID: "emp-1", CompanyID: "co-1", Month: 4, Year: 2025}
	sched := testSchedule(4, 2025, map[int]string{1: "M", 2: "OFF", 3: "M"})
	now := time.Date(2025, 4, 4, 10, 0, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), &fakeLeaveRepo{}, now)

	require.NoError(t, err)
	require.Len(t, sheet.Records, 3)
	assert.Equal(t, "2025-04-01", sheet.Records[0].Date)
	assert.Equal(t, "2025-04-03", sheet.Records[2].Date)
}

func TestFillMissingDays_LeaveOnOffDay(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{EmployeeID: "emp-1", CompanyID: "co-1", Month: 4, Year: 2025}
	sched := testSchedule(4, 2025, map[int]string{1: "OFF", 2: "OFF"})
	leaveRepo := &fakeLeaveRepo{apps: map[string]leave.Application{
		"2025-04-01": {EmployeeID: "emp-1", LeaveType: "Sick Leave", Status: "approved"},
		"2025-04-02": {EmployeeID: "emp-1", LeaveType: "Casual Leave", Status: "approved"},
	}}
	now := time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), leaveRepo, now)

	require.NoError(t, err)
	require.Len(t, sheet.Records, 2)
	assert.Equal(t, attendance.StatusSickLeaveOnOff, sheet.Records[0].Status)
	assert.Equal(t, attendance.StatusCasualLeaveOnOff, sheet.Records[1].Status)
}

func TestFillMissingDays_HolidayCode(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{EmployeeID: "emp-1", CompanyID: "co-1", Month: 4, Year: 2025}
	sched := testSchedule(4, 2025, map[int]string{1: "H"})
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), &fakeLeaveRepo{}, now)

	require.NoError(t, err)
	require.Len(t, sheet.Records, 1)
	assert.Equal(t, attendance.StatusHoliday, sheet.Records[0].Status)
}

func TestFillMissingDays_AbsentDayKeepsShiftWindow(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{EmployeeID: "emp-1", CompanyID: "co-1", Month: 4, Year: 2025}
	sched := testSchedule(4, 2025, map[int]string{1: "N"})
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), &fakeLeaveRepo{}, now)

	require.NoError(t, err)
	require.Len(t, sheet.Records, 1)
	assert.Equal(t, "N", sheet.Records[0].ShiftCode)
	assert.Equal(t, "10:00 PM", sheet.Records[0].ShiftStartTime)
	assert.Equal(t, "6:00 AM", sheet.Records[0].ShiftEndTime)
}

func TestFillMissingDays_NoGap(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{
		EmployeeID: "emp-1",
		CompanyID:  "co-1",
		Month:      4,
		Year:       2025,
		Records: []attendance.DayRecord{
			{Date: "2025-04-04", Status: attendance.StatusPresent, CheckInTime: "09:00"},
		},
	}
	sched := testSchedule(4, 2025, map[int]string{4: "M", 5: "M"})
	now := time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), &fakeLeaveRepo{}, now)

	require.NoError(t, err)
	assert.Len(t, sheet.Records, 1)
}

func TestFillMissingDays_LeaveLookupFailure(t *testing.T) {
	t.Parallel()

	sheet := &attendance.Sheet{EmployeeID: "emp-1", CompanyID: "co-1", Month: 4, Year: 2025}
	sched := testSchedule(4, 2025, map[int]string{1: "M"})
	leaveRepo := &fakeLeaveRepo{err: errors.New("leave store unavailable")}
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	err := fillMissingDays(context.Background(), sheet, sched, testMaster(), leaveRepo, now)

	// Fails closed: the sheet must not be persisted half-filled.
	assert.Error(t, err)
}
