package attendance

import (
	"github.com/kelola-hr/attendance-engine-go/internal/domain/shift"
)

// ResolveShift resolves a schedule code against the shift master into
// an effective window for one day.
//
// A two-character code (other than the reserved "DD") is double duty:
// the first character's shift start combined with the second
// character's shift end. Both halves must resolve. "OFF" never reaches
// this function; callers handle non-working days themselves.
func ResolveShift(code string, master []shift.Shift) (shift.Window, error) {
	if len(code) == 2 && code != shift.CodeDoubleDuty {
		first, okFirst := findShift(master, code[:1])
		second, okSecond := findShift(master, code[1:])
		if !okFirst || !okSecond {
			return shift.Window{}, shift.ErrCompositeShiftIncomplete
		}
		return shift.Window{
			Code:         code,
			StartTime:    first.StartTime,
			EndTime:      second.EndTime,
			StartMinutes: ToMinutes(first.StartTime),
			EndMinutes:   ToMinutes(second.EndTime),
		}, nil
	}

	s, ok := findShift(master, code)
	if !ok {
		return shift.Window{}, shift.ErrShiftNotFound
	}
	return shift.Window{
		Code:         code,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		StartMinutes: ToMinutes(s.StartTime),
		EndMinutes:   ToMinutes(s.EndTime),
	}, nil
}

func findShift(master []shift.Shift, code string) (shift.Shift, bool) {
	for _, s := range master {
		if s.Code == code {
			return s, true
		}
	}
	return shift.Shift{}, false
}
