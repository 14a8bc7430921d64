package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// tempStore creates a store over a fresh log file seeded with content.
func tempStore(t *testing.T, content string) *TSVStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idid.tsv")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return NewTSVStore(path)
}

// TestAppendCreatesFile tests that Append creates a missing log.
func TestAppendCreatesFile(t *testing.T) {
	store := tempStore(t, "")
	when := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	if err := store.Append(when, "first record"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	want := "2024-04-01T12:00:00Z\tfirst record\n"
	if string(data) != want {
		t.Errorf("log content = %q, want %q", data, want)
	}
}

// TestAppendAccumulates tests that records append in order.
func TestAppendAccumulates(t *testing.T) {
	store := tempStore(t, "")
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	if err := store.AppendStart(base); err != nil {
		t.Fatal(err)
	}
	if err := store.Append(base.Add(3*time.Hour), "morning work"); err != nil {
		t.Fatal(err)
	}

	lines, err := store.TailLines(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Tail lines come most recent first.
	if lines[0] != "2024-04-01T12:00:00Z\tmorning work" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "2024-04-01T09:00:00Z\t"+StartMarker {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

// TestLastRecord tests reading the final record.
func TestLastRecord(t *testing.T) {
	store := tempStore(t, sampleWeek)

	when, text, err := store.LastRecord()
	if err != nil {
		t.Fatalf("LastRecord() error: %v", err)
	}
	if text != "Friday" {
		t.Errorf("text = %q, want %q", text, "Friday")
	}
	if !when.Equal(time.Date(2024, 3, 29, 17, 0, 0, 0, time.UTC)) {
		t.Errorf("when = %v", when)
	}
}

// TestLastRecordEmptyLog tests the sentinel for a log with no records.
func TestLastRecordEmptyLog(t *testing.T) {
	store := tempStore(t, "")
	if err := store.Append(time.Now(), "x"); err != nil {
		t.Fatal(err)
	}
	empty := tempStore(t, "")
	// Create a zero-byte file.
	if err := os.WriteFile(empty.Path(), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := empty.LastRecord()
	if !errors.Is(err, ErrEmptyLog) {
		t.Errorf("LastRecord() error = %v, want ErrEmptyLog", err)
	}
}

// TestTailLinesFewerThanAsked tests asking for more lines than exist.
func TestTailLinesFewerThanAsked(t *testing.T) {
	store := tempStore(t, "2024-04-01T12:00:00Z\tonly line\n")
	lines, err := store.TailLines(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "2024-04-01T12:00:00Z\tonly line" {
		t.Errorf("lines = %q", lines)
	}
}

// TestStorePick tests the end-to-end file scan.
func TestStorePick(t *testing.T) {
	store := tempStore(t, sampleWeek)
	filter := NewDateFilter([]time.Time{ymd(2024, 3, 25), ymd(2024, 3, 29)}, nil)

	scanner, err := store.Pick(filter)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	defer scanner.Close() //nolint:errcheck // test cleanup

	count := 0
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if count != 5 {
		t.Errorf("got %d entries, want 5", count)
	}
}

// TestStorePickMissingFile tests the error before any scanning begins.
func TestStorePickMissingFile(t *testing.T) {
	store := NewTSVStore(filepath.Join(t.TempDir(), "missing.tsv"))
	if _, err := store.Pick(NewDateFilter(nil, []time.Time{ymd(2024, 4, 1)})); err == nil {
		t.Error("Pick() on missing file succeeded, want error")
	}
}
