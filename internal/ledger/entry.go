// Package ledger provides the accomplishment log: the TSV record model,
// date filtering, and the reverse scan that reconstructs entries.
package ledger

import (
	"fmt"
	"strings"
	"time"
)

// StartMarker is the reserved record text that marks the start of a
// recording session. A marker carries no duration of its own; it only
// breaks entry continuity so the first accomplishment after it is
// measured from the marker, not from the previous day.
const StartMarker = "*~*~*--------------------"

// Entry is a reconstructed time interval: begin comes from the log line
// preceding this one in forward order, cease and text from the line
// itself. Entries are derived during scanning and never stored.
type Entry struct {
	Begin time.Time `json:"begin"`
	Cease time.Time `json:"cease"`
	Text  string    `json:"text"`
}

// Duration returns the length of the interval.
func (e *Entry) Duration() time.Duration {
	return e.Cease.Sub(e.Begin)
}

// HHMM formats a duration as zero-padded hours and minutes, "07:05".
func HHMM(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HHMM formats the entry duration as hours and minutes.
func (e *Entry) HHMM() string {
	return HHMM(e.Duration())
}

// IsSessionStart reports whether text denotes a session-start record.
// Marker recognition is a prefix match, so decorated markers written by
// hand still count.
func IsSessionStart(text string) bool {
	return strings.HasPrefix(text, StartMarker)
}

// ParseRecord splits a log line into its timestamp and text. The line
// format is an RFC3339 timestamp with an explicit numeric offset, one
// tab, then free text; any further tabs belong to the text. The offset
// is preserved verbatim, not normalized.
func ParseRecord(line string) (when time.Time, text string, err error) {
	stamp, text, found := strings.Cut(line, "\t")
	if !found {
		return time.Time{}, "", fmt.Errorf("no tab separator in %q", line)
	}
	when, err = time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("timestamp %q: %w", stamp, err)
	}
	return when, text, nil
}

// FormatRecord renders one log line: the timestamp at seconds precision
// in its own offset, a tab, the text, and a trailing newline.
func FormatRecord(when time.Time, text string) string {
	return when.Format(time.RFC3339) + "\t" + text + "\n"
}

// DateOf truncates an instant to its calendar date, midnight UTC, as
// observed in the instant's own offset. Dates produced here are the
// values DateFilter operates on.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
