package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/when"
)

// --- Add tool ---

// AddInput is the input for the add tool.
type AddInput struct {
	Text string `json:"text"           jsonschema:"accomplishment text (required)"`
	When string `json:"when,omitempty" jsonschema:"end time: minutes ago (1-1440) or clock time like 7:30, 2pm, 14:05"`
}

// AddOutput is the output for the add tool.
type AddOutput struct {
	Recorded string `json:"recorded"          jsonschema:"timestamp written to the log (RFC 3339)"`
	Text     string `json:"text"              jsonschema:"recorded text"`
	Elapsed  string `json:"elapsed,omitempty" jsonschema:"time since the previous record as HH:MM"`
}

func handleAdd(store *ledger.TSVStore) mcp.ToolHandlerFor[AddInput, AddOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
		text := strings.TrimSpace(input.Text)
		if text == "" {
			return nil, AddOutput{}, errors.New("text is required")
		}

		now := time.Now()
		ended, err := when.TimeOfDay(input.When, now)
		if err != nil {
			return nil, AddOutput{}, err
		}

		elapsed, err := elapsedSinceLast(store, now)
		if err != nil {
			return nil, AddOutput{}, err
		}

		if err := store.Append(ended, text); err != nil {
			return nil, AddOutput{}, fmt.Errorf("recording accomplishment: %w", err)
		}

		return nil, AddOutput{
			Recorded: ended.Format(time.RFC3339),
			Text:     text,
			Elapsed:  elapsed,
		}, nil
	}
}

// elapsedSinceLast formats the time since the log's final record, or ""
// when the log is empty.
func elapsedSinceLast(store *ledger.TSVStore, now time.Time) (string, error) {
	last, _, err := store.LastRecord()
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyLog) {
			return "", nil
		}
		return "", fmt.Errorf("reading last record: %w", err)
	}
	return ledger.HHMM(now.Sub(last)), nil
}

// --- Start tool ---

// StartInput is the input for the start tool.
type StartInput struct {
	When string `json:"when,omitempty" jsonschema:"start time: minutes ago (1-1440) or clock time like 7:30, 2pm, 14:05"`
}

// StartOutput is the output for the start tool.
type StartOutput struct {
	Started string `json:"started" jsonschema:"session start timestamp written to the log (RFC 3339)"`
}

func handleStart(store *ledger.TSVStore) mcp.ToolHandlerFor[StartInput, StartOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StartInput) (*mcp.CallToolResult, StartOutput, error) {
		started, err := when.TimeOfDay(input.When, time.Now())
		if err != nil {
			return nil, StartOutput{}, err
		}

		if err := store.AppendStart(started); err != nil {
			return nil, StartOutput{}, fmt.Errorf("recording session start: %w", err)
		}

		return nil, StartOutput{Started: started.Format(time.RFC3339)}, nil
	}
}
