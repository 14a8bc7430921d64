// Package main provides the entry point for the idid CLI.
package main

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/idid/internal/ledger"
)

// seedSessions writes a Friday session and a Monday-morning session
// relative to testNow (Monday 2024-04-01).
func seedSessions(t *testing.T, store *ledger.TSVStore) {
	t.Helper()
	day := func(d int, hour, min int) time.Time {
		return time.Date(2024, 3, 25+d, hour, min, 0, 0, testNow.Location())
	}
	// Friday 2024-03-29
	if err := store.AppendStart(day(4, 14, 0)); err != nil {
		t.Fatal(err)
	}
	if err := store.Append(day(4, 15, 0), "Closed out the sprint"); err != nil {
		t.Fatal(err)
	}
	// Monday 2024-04-01
	if err := store.AppendStart(day(7, 9, 0)); err != nil {
		t.Fatal(err)
	}
	if err := store.Append(day(7, 10, 30), "Morning review"); err != nil {
		t.Fatal(err)
	}
	if err := store.Append(day(7, 11, 0), "Bug fix"); err != nil {
		t.Fatal(err)
	}
}

func TestShowCommand(t *testing.T) {
	store := makeStore(t)
	seedSessions(t, store)

	out, err := execCmd(t, newShowCmdInternal(store, fixedNow), false, "today")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	want := "2024-04-01T10:30:00+05:00\t00:30\tBug fix\n" +
		"2024-04-01T09:00:00+05:00\t01:30\tMorning review\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestShowCommandRange(t *testing.T) {
	store := makeStore(t)
	seedSessions(t, store)

	out, err := execCmd(t, newShowCmdInternal(store, fixedNow), false, "--range", "fri..today")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[2], "Closed out the sprint") {
		t.Errorf("oldest line = %q, want Friday entry", lines[2])
	}
}

func TestShowCommandSeconds(t *testing.T) {
	store := makeStore(t)
	seedSessions(t, store)

	out, err := execCmd(t, newShowCmdInternal(store, fixedNow), false, "-s", "today")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "\t1800\tBug fix") {
		t.Errorf("output = %q, want seconds column", out)
	}
}

func TestShowCommandJSON(t *testing.T) {
	store := makeStore(t)
	seedSessions(t, store)

	out, err := execCmd(t, newShowCmdInternal(store, fixedNow), true, "today")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0]["text"] != "Bug fix" || got[0]["duration"] != "00:30" {
		t.Errorf("first entry = %v", got[0])
	}
}

func TestShowCommandEmptyFilter(t *testing.T) {
	out, err := execCmd(t, newShowCmdInternal(makeStore(t), fixedNow), false)
	if err == nil {
		t.Fatal("show with no dates succeeded, want error")
	}
	if !strings.Contains(out, "at least one date or range is required") {
		t.Errorf("output = %q", out)
	}
}

func TestShowCommandBadDate(t *testing.T) {
	out, err := execCmd(t, newShowCmdInternal(makeStore(t), fixedNow), false, "banana")
	if err == nil {
		t.Fatal("show with bad date succeeded, want error")
	}
	if !strings.Contains(out, "invalid banana") {
		t.Errorf("output = %q", out)
	}
}

func TestShowCommandNoMatches(t *testing.T) {
	store := makeStore(t)
	seedSessions(t, store)

	// Tuesday of the prior week has no records.
	out, err := execCmd(t, newShowCmdInternal(store, fixedNow), false, "tue")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}
