// Package when parses the human-friendly date and time-of-day expressions
// accepted on the idid command line. Every parse takes an explicit
// reference moment so results are deterministic under test; callers pass
// time.Now() in production.
package when

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// weekdayIndex maps a three-letter abbreviation to days from Monday.
var weekdayIndex = map[string]int{
	"mon": 0,
	"tue": 1,
	"wed": 2,
	"thu": 3,
	"fri": 4,
	"sat": 5,
	"sun": 6,
}

// Date resolves a date expression relative to now's calendar date.
//
// Accepted forms:
//   - Days before today: "0" is today, "1" is yesterday; up to 3 digits.
//   - Literal "today", or anything starting with "yester".
//   - MMDD (dashes optional): the most recent past occurrence.
//   - YYMMDD (dashes optional): years 2000-2099.
//   - YYYYMMDD (dashes optional).
//   - Last weekday: "mon".."sun", an optional digit suffix adds weeks,
//     so "mon" is last Monday and "mon1" one week before that.
//
// The result is a date at midnight UTC.
func Date(expr string, now time.Time) (time.Time, error) {
	today := dateOf(now)

	if isNumeric(expr) {
		return NumericDate(expr, now)
	}

	// Accept anything that starts with "yester", like "yesternight".
	lower := strings.ToLower(expr)
	if strings.HasPrefix(lower, "yester") {
		return today.AddDate(0, 0, -1), nil
	}

	if expr == "today" {
		return today, nil
	}
	return lastWeekday(lower, today)
}

// Dates resolves a list of date expressions. The first failure is
// reported with the offending expression.
func Dates(exprs []string, now time.Time) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(exprs))
	for _, expr := range exprs {
		d, err := Date(expr, now)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", expr, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// NumericDate resolves a digits-and-dashes date expression relative to
// now's calendar date. Dashes are stripped before the digit count decides
// the interpretation; see Date for the accepted forms.
func NumericDate(expr string, now time.Time) (time.Time, error) {
	today := dateOf(now)
	dashless := strings.ReplaceAll(expr, "-", "")

	switch len(dashless) {
	case 1, 2, 3:
		// Number of days before the reference date.
		days, err := strconv.Atoi(dashless)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid number of days past: %s", dashless)
		}
		return today.AddDate(0, 0, -days), nil

	case 4:
		// MMDD: most recent occurrence strictly before today. The
		// month/day must form a real date in the year being tried;
		// "0229" is only valid when that year is a leap year.
		md, err := parseMonthDay(dashless)
		if err != nil {
			return time.Time{}, err
		}
		computed, ok := makeDate(today.Year(), md.month, md.day)
		if !ok {
			return time.Time{}, fmt.Errorf("invalid date: %s", expr)
		}
		if computed.Before(today) {
			return computed, nil
		}
		computed, ok = makeDate(today.Year()-1, md.month, md.day)
		if !ok {
			return time.Time{}, fmt.Errorf("invalid date: %s", expr)
		}
		return computed, nil

	case 6, 8:
		// YYMMDD or YYYYMMDD.
		var year int
		var monthDay string
		if len(dashless) == 6 {
			yy, _ := strconv.Atoi(dashless[0:2])
			year = 2000 + yy
			monthDay = dashless[2:6]
		} else {
			year, _ = strconv.Atoi(dashless[0:4])
			if year < 1 {
				return time.Time{}, fmt.Errorf("invalid year: %s", dashless[0:4])
			}
			monthDay = dashless[4:8]
		}
		md, err := parseMonthDay(monthDay)
		if err != nil {
			return time.Time{}, err
		}
		computed, ok := makeDate(year, md.month, md.day)
		if !ok {
			return time.Time{}, fmt.Errorf("invalid date: %s", expr)
		}
		return computed, nil

	default:
		return time.Time{}, fmt.Errorf("invalid date: %s", expr)
	}
}

// monthDay is a month/day pair parsed from a 4-digit string. Only range
// validity is checked here; whether the combination exists in a given
// year is left to makeDate.
type monthDay struct {
	month int
	day   int
}

// parseMonthDay parses MMDD with range checks 1-12 and 1-31.
func parseMonthDay(input string) (monthDay, error) {
	month, err := strconv.Atoi(input[0:2])
	if err != nil {
		return monthDay{}, fmt.Errorf("invalid month: %s", input[0:2])
	}
	day, err := strconv.Atoi(input[2:4])
	if err != nil {
		return monthDay{}, fmt.Errorf("invalid day: %s", input[2:4])
	}

	if month < 1 || month > 12 {
		return monthDay{}, fmt.Errorf("invalid month: %s", input[0:2])
	}
	if day < 1 || day > 31 {
		return monthDay{}, fmt.Errorf("invalid day: %s", input[2:4])
	}
	return monthDay{month: month, day: day}, nil
}

// lastWeekday resolves a lowercase weekday expression like "fri" or
// "mon1" to the most recent past occurrence of that weekday.
func lastWeekday(input string, today time.Time) (time.Time, error) {
	if len(input) < 3 {
		return time.Time{}, errInvalidWeekday
	}
	target, ok := weekdayIndex[input[:3]]
	if !ok {
		return time.Time{}, errInvalidWeekday
	}

	// Characters after the abbreviation add whole weeks.
	weeksAgo := 0
	if len(input) > 3 {
		parsed, err := strconv.ParseUint(input[3:], 10, 32)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing weeks: %w", err)
		}
		weeksAgo = int(parsed)
	}

	fromMonday := daysFromMonday(today)
	if target == fromMonday {
		// Asking for today's weekday means last week's occurrence.
		weeksAgo++
	}

	daysAgo := (fromMonday+7-target)%7 + weeksAgo*7
	return today.AddDate(0, 0, -daysAgo), nil
}

// errInvalidWeekday names the accepted abbreviations.
var errInvalidWeekday = fmt.Errorf(
	"invalid day of the week abbreviation; use: mon, tue, wed, thu, fri, sat, sun")

// daysFromMonday returns 0 for Monday through 6 for Sunday.
func daysFromMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// isNumeric reports whether every character is a digit or a dash.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}

// dateOf truncates an instant to its calendar date in the instant's own
// offset, at midnight UTC. Midnight-UTC dates are the comparison currency
// throughout idid.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// makeDate builds a midnight-UTC date and reports whether the
// year/month/day combination actually exists (time.Date normalizes
// out-of-range values instead of failing).
func makeDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
