package attendance

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const minutesPerDay = 1440

// ToMinutes converts a human time string ("9:05 AM", "14.30") to
// minutes since local midnight. Malformed input degrades to 0 and is
// logged as a data-quality issue; it never fails.
func ToMinutes(raw string) int {
	mins, err := parseClock(raw)
	if err != nil {
		slog.Warn("unparsable time value, treating as midnight", "value", raw, "error", err)
		return 0
	}
	return mins
}

func parseClock(raw string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", ":")

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
		s = strings.TrimSpace(strings.TrimSuffix(s, "AM"))
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
		s = strings.TrimSpace(strings.TrimSuffix(s, "PM"))
	}

	hourPart, minutePart, hasMinute := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q: %w", hourPart, err)
	}

	minute := 0
	if hasMinute {
		minute, err = strconv.Atoi(strings.TrimSpace(minutePart))
		if err != nil {
			return 0, fmt.Errorf("invalid minute %q: %w", minutePart, err)
		}
	}

	// 12 AM is midnight, 12 PM is noon.
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", raw)
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes-since-midnight as "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// FormatDuration renders a minute count as "Hh Mm".
func FormatDuration(mins int) string {
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
