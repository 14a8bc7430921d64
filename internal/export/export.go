// Package export provides formatting for picked ledger entries.
//
// Entries render either as tab-separated lines or as a JSON array. In
// both forms each entry carries its begin timestamp, elapsed time, and
// text; the elapsed time is an HH:MM string by default or a raw second
// count when requested.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/output"
)

// jsonEntry is the wire shape of one entry. Exactly one of Duration and
// Seconds is set.
type jsonEntry struct {
	Begin    string `json:"begin"`
	Duration string `json:"duration,omitempty"`
	Seconds  *int64 `json:"seconds,omitempty"`
	Text     string `json:"text"`
}

// FormatTSV writes one tab-separated line per entry to the printer.
func FormatTSV(printer *output.Printer, entries []*ledger.Entry, inSeconds bool) {
	for _, entry := range entries {
		printer.Println(fmt.Sprintf("%s\t%s\t%s",
			entry.Begin.Format(time.RFC3339), elapsed(entry, inSeconds), entry.Text))
	}
}

// FormatJSON writes the entries as a JSON array to the printer.
func FormatJSON(printer *output.Printer, entries []*ledger.Entry, inSeconds bool) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		je := jsonEntry{
			Begin: entry.Begin.Format(time.RFC3339),
			Text:  entry.Text,
		}
		if inSeconds {
			secs := int64(entry.Duration() / time.Second)
			je.Seconds = &secs
		} else {
			je.Duration = entry.HHMM()
		}
		out = append(out, je)
	}
	return printer.WriteJSON(out)
}

func elapsed(entry *ledger.Entry, inSeconds bool) string {
	if inSeconds {
		return fmt.Sprintf("%d", int64(entry.Duration()/time.Second))
	}
	return entry.HHMM()
}

// DaySum is the accumulated time for one calendar day.
type DaySum struct {
	Day   time.Time
	Total time.Duration
}

// SumByDay accumulates entry durations per begin date, oldest day first.
func SumByDay(entries []*ledger.Entry) []DaySum {
	totals := make(map[time.Time]time.Duration)
	for _, entry := range entries {
		day := ledger.DateOf(entry.Begin)
		totals[day] += entry.Duration()
	}

	sums := make([]DaySum, 0, len(totals))
	for day, total := range totals {
		sums = append(sums, DaySum{Day: day, Total: total})
	}
	sort.Slice(sums, func(i, j int) bool { return sums[i].Day.Before(sums[j].Day) })
	return sums
}

// jsonSum is the wire shape of one per-day total.
type jsonSum struct {
	Date     string `json:"date"`
	Duration string `json:"duration,omitempty"`
	Seconds  *int64 `json:"seconds,omitempty"`
}

// FormatSumsTSV writes one date and total per line, plus an optional
// grand total line.
func FormatSumsTSV(printer *output.Printer, sums []DaySum, inSeconds, withTotal bool) {
	var grand time.Duration
	for _, sum := range sums {
		printer.Println(fmt.Sprintf("%s\t%s",
			sum.Day.Format("2006-01-02 Mon"), elapsedDuration(sum.Total, inSeconds)))
		grand += sum.Total
	}
	if withTotal {
		printer.Println(fmt.Sprintf("total\t%s", elapsedDuration(grand, inSeconds)))
	}
}

// FormatSumsJSON writes the per-day totals as a JSON array. When
// withTotal is set the grand total is appended under the date "total".
func FormatSumsJSON(printer *output.Printer, sums []DaySum, inSeconds, withTotal bool) error {
	out := make([]jsonSum, 0, len(sums)+1)
	var grand time.Duration
	for _, sum := range sums {
		out = append(out, newJSONSum(sum.Day.Format(time.DateOnly), sum.Total, inSeconds))
		grand += sum.Total
	}
	if withTotal {
		out = append(out, newJSONSum("total", grand, inSeconds))
	}
	return printer.WriteJSON(out)
}

func newJSONSum(date string, total time.Duration, inSeconds bool) jsonSum {
	js := jsonSum{Date: date}
	if inSeconds {
		secs := int64(total / time.Second)
		js.Seconds = &secs
	} else {
		js.Duration = ledger.HHMM(total)
	}
	return js
}

func elapsedDuration(total time.Duration, inSeconds bool) string {
	if inSeconds {
		return fmt.Sprintf("%d", int64(total/time.Second))
	}
	return ledger.HHMM(total)
}
