package when

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxMinutesBack caps the minutes-in-the-past form at one day.
const maxMinutesBack = 1440

// TimeOfDay resolves a time adjustment expression relative to now.
// An empty expression returns now unchanged.
//
// Accepted forms:
//   - MINUTES in the past, 1-1440: "30" is half an hour ago.
//   - "HH:MM" in 24-hour time: "7:30" or "14:00".
//   - "HH[:MM](am|pm)": "8am", "8:15am", "1:30pm".
//
// Clock forms resolve on now's calendar date in now's offset, with zero
// seconds.
func TimeOfDay(expr string, now time.Time) (time.Time, error) {
	if expr == "" {
		return now, nil
	}

	// Whole-number input is minutes in the past. Zero is rejected:
	// "idid add -t 0" has no sensible meaning.
	if minutes, err := strconv.Atoi(expr); err == nil {
		if minutes < 1 || minutes > maxMinutesBack {
			return time.Time{}, fmt.Errorf("invalid minutes %q", expr)
		}
		return now.Add(-time.Duration(minutes) * time.Minute), nil
	}

	meridiem := ""
	clock := expr
	switch {
	case strings.HasSuffix(clock, "am"):
		meridiem = "am"
		clock = strings.TrimSuffix(clock, "am")
	case strings.HasSuffix(clock, "pm"):
		meridiem = "pm"
		clock = strings.TrimSuffix(clock, "pm")
	}
	clock = strings.TrimSpace(clock)

	if !isClockDigits(clock) {
		return time.Time{}, fmt.Errorf("invalid HH[:MM](am|pm) format")
	}

	hour, minute, err := splitClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	if minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minutes")
	}
	if hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hours")
	}
	if hour > 11 && meridiem != "" {
		// A 12-hour clock hour may not exceed 11 with a meridiem marker.
		return time.Time{}, fmt.Errorf("invalid hours with %q", meridiem)
	}
	if meridiem == "pm" {
		hour += 12
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// splitClock parses "HH" or "HH:MM"; minutes default to zero.
func splitClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	switch len(parts) {
	case 1:
		hour, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid hours")
		}
	case 2:
		hour, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid hours")
		}
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid minutes")
		}
	default:
		return 0, 0, fmt.Errorf("invalid HH[:MM](am|pm) format")
	}
	return hour, minute, nil
}

// isClockDigits reports whether s contains only digits and colons, and
// is not empty.
func isClockDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != ':' {
			return false
		}
	}
	return true
}
