package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/idid/internal/export"
	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/when"
)

// --- Shared types ---

// EntryOut is one reconstructed accomplishment for output.
type EntryOut struct {
	Begin    string `json:"begin"    jsonschema:"work start timestamp (RFC 3339)"`
	Cease    string `json:"cease"    jsonschema:"work end timestamp (RFC 3339)"`
	Duration string `json:"duration" jsonschema:"elapsed time as HH:MM"`
	Seconds  int64  `json:"seconds"  jsonschema:"elapsed time in seconds"`
	Text     string `json:"text"     jsonschema:"accomplishment text"`
}

func toEntryOut(entry *ledger.Entry) EntryOut {
	return EntryOut{
		Begin:    entry.Begin.Format(time.RFC3339),
		Cease:    entry.Cease.Format(time.RFC3339),
		Duration: entry.HHMM(),
		Seconds:  int64(entry.Duration() / time.Second),
		Text:     entry.Text,
	}
}

// pickEntries parses the date and range expressions and collects every
// matching entry, most recent first.
func pickEntries(store *ledger.TSVStore, dates, ranges []string) ([]*ledger.Entry, error) {
	filter, err := when.Filter(dates, ranges, time.Now())
	if err != nil {
		return nil, err
	}
	if filter.Empty() {
		return nil, errors.New("at least one date or range is required")
	}

	scanner, err := store.Pick(filter)
	if err != nil {
		return nil, err
	}
	defer scanner.Close() //nolint:errcheck // read-only

	var entries []*ledger.Entry
	for scanner.Scan() {
		entries = append(entries, scanner.Entry())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning log: %w", err)
	}
	return entries, nil
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	Dates  []string `json:"dates,omitempty"  jsonschema:"date expressions (today, yesterday, mon..sun, 3, 0402, 20240402)"`
	Ranges []string `json:"ranges,omitempty" jsonschema:"inclusive date ranges as FROM..TO, endpoints in either order"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Count   int        `json:"count"             jsonschema:"number of matching entries"`
	Entries []EntryOut `json:"entries,omitempty" jsonschema:"matching entries, most recent first"`
}

func handleShow(store *ledger.TSVStore) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		entries, err := pickEntries(store, input.Dates, input.Ranges)
		if err != nil {
			return nil, ShowOutput{}, err
		}

		out := ShowOutput{Count: len(entries)}
		for _, entry := range entries {
			out.Entries = append(out.Entries, toEntryOut(entry))
		}
		return nil, out, nil
	}
}

// --- Sum tool ---

// SumInput is the input for the sum tool.
type SumInput struct {
	Dates  []string `json:"dates,omitempty"  jsonschema:"date expressions (today, yesterday, mon..sun, 3, 0402, 20240402)"`
	Ranges []string `json:"ranges,omitempty" jsonschema:"inclusive date ranges as FROM..TO, endpoints in either order"`
}

// DayTotal is the accumulated time for one calendar day.
type DayTotal struct {
	Date     string `json:"date"     jsonschema:"calendar day (YYYY-MM-DD)"`
	Duration string `json:"duration" jsonschema:"accumulated time as HH:MM"`
	Seconds  int64  `json:"seconds"  jsonschema:"accumulated time in seconds"`
}

// SumOutput is the output for the sum tool.
type SumOutput struct {
	Days  []DayTotal `json:"days,omitempty" jsonschema:"per-day totals, oldest first"`
	Total string     `json:"total"          jsonschema:"grand total as HH:MM"`
}

func handleSum(store *ledger.TSVStore) mcp.ToolHandlerFor[SumInput, SumOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SumInput) (*mcp.CallToolResult, SumOutput, error) {
		entries, err := pickEntries(store, input.Dates, input.Ranges)
		if err != nil {
			return nil, SumOutput{}, err
		}

		var out SumOutput
		var grand time.Duration
		for _, sum := range export.SumByDay(entries) {
			out.Days = append(out.Days, DayTotal{
				Date:     sum.Day.Format(time.DateOnly),
				Duration: ledger.HHMM(sum.Total),
				Seconds:  int64(sum.Total / time.Second),
			})
			grand += sum.Total
		}
		out.Total = ledger.HHMM(grand)
		return nil, out, nil
	}
}

// --- Last tool ---

// LastInput is the input for the last tool.
type LastInput struct {
	Lines int `json:"lines,omitempty" jsonschema:"number of raw log lines to return; 0 reports elapsed time instead"`
}

// LastOutput is the output for the last tool.
type LastOutput struct {
	Lines   []string `json:"lines,omitempty"   jsonschema:"raw log lines, most recent first"`
	Elapsed string   `json:"elapsed,omitempty" jsonschema:"time since the last record as HH:MM, only when that record is from today"`
}

func handleLast(store *ledger.TSVStore) mcp.ToolHandlerFor[LastInput, LastOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LastInput) (*mcp.CallToolResult, LastOutput, error) {
		if input.Lines < 0 {
			return nil, LastOutput{}, errors.New("lines must not be negative")
		}

		if input.Lines > 0 {
			lines, err := store.TailLines(input.Lines)
			if err != nil {
				return nil, LastOutput{}, err
			}
			return nil, LastOutput{Lines: lines}, nil
		}

		last, _, err := store.LastRecord()
		if err != nil {
			if errors.Is(err, ledger.ErrEmptyLog) {
				return nil, LastOutput{}, nil
			}
			return nil, LastOutput{}, err
		}

		now := time.Now()
		out := LastOutput{}
		if ledger.DateOf(last).Equal(ledger.DateOf(now)) {
			out.Elapsed = ledger.HHMM(now.Sub(last))
		}
		return nil, out, nil
	}
}
