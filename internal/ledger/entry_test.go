package ledger

import (
	"strings"
	"testing"
	"time"
)

// TestParseRecord tests splitting a log line into timestamp and text.
func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantText string
		wantTime time.Time
	}{
		{
			name:     "utc timestamp",
			line:     "2024-04-01T12:00:00Z\tSample text",
			wantText: "Sample text",
			wantTime: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit offset preserved",
			line:     "2024-04-01T12:15:30+05:00\tdid the thing",
			wantText: "did the thing",
			wantTime: time.Date(2024, 4, 1, 12, 15, 30, 0, time.FixedZone("", 5*60*60)),
		},
		{
			name:     "further tabs belong to text",
			line:     "2024-04-01T12:00:00Z\tcol1\tcol2\tcol3",
			wantText: "col1\tcol2\tcol3",
			wantTime: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "empty text",
			line:     "2024-04-01T12:00:00Z\t",
			wantText: "",
			wantTime: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			when, text, err := ParseRecord(tt.line)
			if err != nil {
				t.Fatalf("ParseRecord() error: %v", err)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if !when.Equal(tt.wantTime) {
				t.Errorf("when = %v, want %v", when, tt.wantTime)
			}
			// The offset must survive verbatim, not be normalized.
			_, wantOff := tt.wantTime.Zone()
			_, gotOff := when.Zone()
			if gotOff != wantOff {
				t.Errorf("offset = %d, want %d", gotOff, wantOff)
			}
		})
	}
}

// TestParseRecordErrors tests that malformed lines fail naming the input.
func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no tab", "2024-04-01T12:00:00Z Sample text"},
		{"empty line", ""},
		{"bad timestamp", "yesterday\tSample text"},
		{"bare date", "2024-04-01\tSample text"},
		{"zone abbreviation", "2024-04-01T12:00:00 PDT\tSample text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRecord(tt.line)
			if err == nil {
				t.Fatalf("ParseRecord(%q) succeeded, want error", tt.line)
			}
		})
	}
}

// TestFormatRecord tests the inverse operation.
func TestFormatRecord(t *testing.T) {
	when := time.Date(2024, 4, 1, 12, 15, 30, 0, time.FixedZone("", 5*60*60))
	got := FormatRecord(when, "Sample text")
	want := "2024-04-01T12:15:30+05:00\tSample text\n"
	if got != want {
		t.Errorf("FormatRecord() = %q, want %q", got, want)
	}
}

// TestFormatRecordTruncatesSubseconds tests seconds precision.
func TestFormatRecordTruncatesSubseconds(t *testing.T) {
	when := time.Date(2024, 4, 1, 12, 15, 30, 123456789, time.UTC)
	got := FormatRecord(when, "x")
	if strings.Contains(got, ".") {
		t.Errorf("FormatRecord() = %q, want no fractional seconds", got)
	}
}

// TestRecordRoundTrip tests that formatting then parsing preserves the
// instant and text.
func TestRecordRoundTrip(t *testing.T) {
	when := time.Date(2024, 4, 1, 8, 0, 0, 0, time.FixedZone("", -8*60*60))
	line := strings.TrimSuffix(FormatRecord(when, "round trip"), "\n")

	gotWhen, gotText, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord() error: %v", err)
	}
	if !gotWhen.Equal(when) || gotText != "round trip" {
		t.Errorf("round trip = %v %q, want %v %q", gotWhen, gotText, when, "round trip")
	}
}

// TestEntryDuration tests interval math and formatting.
func TestEntryDuration(t *testing.T) {
	e := &Entry{
		Begin: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		Cease: time.Date(2024, 4, 1, 17, 5, 0, 0, time.UTC),
		Text:  "long day",
	}
	if e.Duration() != 8*time.Hour+5*time.Minute {
		t.Errorf("Duration() = %v", e.Duration())
	}
	if e.HHMM() != "08:05" {
		t.Errorf("HHMM() = %q, want %q", e.HHMM(), "08:05")
	}
}

// TestIsSessionStart tests marker recognition.
func TestIsSessionStart(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{StartMarker, true},
		{StartMarker + " extra", true}, // prefix match
		{"did a thing", false},
		{"", false},
		{" " + StartMarker, false},
	}
	for _, tt := range tests {
		if got := IsSessionStart(tt.text); got != tt.want {
			t.Errorf("IsSessionStart(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
