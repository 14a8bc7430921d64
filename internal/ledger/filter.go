package ledger

import (
	"fmt"
	"sort"
	"time"
)

// dateRange is an inclusive span of calendar dates, start <= end.
type dateRange struct {
	start time.Time
	end   time.Time
}

// DateFilter decides whether a calendar date is of interest. It is an
// immutable union of individual dates and inclusive date ranges, with
// tight oldest/newest bounds derived for scan termination. The bounds
// are an optimization only; containment is always checked exactly.
type DateFilter struct {
	ranges []dateRange
	dates  []time.Time

	oldest time.Time
	newest time.Time
	// bounded is false only for a filter with no criteria, which
	// matches nothing. Absent bounds never mean "match everything".
	bounded bool
}

// NewDateFilter builds a filter from range endpoints taken in pairs plus
// individual dates. Pair orientation does not matter; each pair is
// normalized to start <= end. All inputs are truncated to calendar
// dates.
//
// An odd-length rangePairs slice is a caller bug, not user input, and
// panics.
func NewDateFilter(rangePairs []time.Time, dates []time.Time) *DateFilter {
	if len(rangePairs)%2 != 0 {
		panic(fmt.Sprintf("ledger: NewDateFilter given %d range endpoints; want pairs", len(rangePairs)))
	}

	f := &DateFilter{}

	f.dates = make([]time.Time, len(dates))
	for i, d := range dates {
		f.dates[i] = DateOf(d)
	}
	sort.Slice(f.dates, func(i, j int) bool { return f.dates[i].Before(f.dates[j]) })
	if len(f.dates) > 0 {
		f.oldest = f.dates[0]
		f.newest = f.dates[len(f.dates)-1]
		f.bounded = true
	}

	for i := 0; i < len(rangePairs); i += 2 {
		start, end := DateOf(rangePairs[i]), DateOf(rangePairs[i+1])
		if start.After(end) {
			start, end = end, start
		}
		f.ranges = append(f.ranges, dateRange{start: start, end: end})

		if !f.bounded {
			f.oldest, f.newest = start, end
			f.bounded = true
			continue
		}
		if start.Before(f.oldest) {
			f.oldest = start
		}
		if end.After(f.newest) {
			f.newest = end
		}
	}
	sort.Slice(f.ranges, func(i, j int) bool { return f.ranges[i].start.Before(f.ranges[j].start) })

	return f
}

// Contains reports whether the given date matches an individual date or
// falls inside one of the inclusive ranges. The date is truncated to a
// calendar date first.
func (f *DateFilter) Contains(date time.Time) bool {
	d := DateOf(date)
	if !f.bounded || d.Before(f.oldest) || d.After(f.newest) {
		return false
	}
	for _, known := range f.dates {
		if known.Equal(d) {
			return true
		}
	}
	for _, r := range f.ranges {
		if !d.Before(r.start) && !d.After(r.end) {
			return true
		}
	}
	return false
}

// Empty reports whether the filter has no criteria at all. Callers use
// this to reject a scan that could never match.
func (f *DateFilter) Empty() bool {
	return len(f.dates) == 0 && len(f.ranges) == 0
}

// Oldest returns the lower bound of interest. ok is false when the
// filter is empty.
func (f *DateFilter) Oldest() (date time.Time, ok bool) {
	return f.oldest, f.bounded
}

// Newest returns the upper bound of interest. ok is false when the
// filter is empty.
func (f *DateFilter) Newest() (date time.Time, ok bool) {
	return f.newest, f.bounded
}
