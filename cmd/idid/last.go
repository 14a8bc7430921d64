// Package main provides the entry point for the idid CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/output"
)

// newLastCmd creates the last command.
func newLastCmd() *cobra.Command {
	return newLastCmdInternal(nil, time.Now)
}

// newLastCmdInternal creates the last command with optional store and
// clock injection. If store is nil, the log is resolved when the
// command runs.
func newLastCmdInternal(store *ledger.TSVStore, now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last [LINES]",
		Short: "See time since the last record, or raw log lines",
		Long: `With no argument, show the time elapsed since the last record when
that record is from today. With LINES, show that many raw log lines,
most recent first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLast(cmd, store, now, args)
		},
	}

	return cmd
}

// runLast executes the last command.
func runLast(cmd *cobra.Command, store *ledger.TSVStore, now func() time.Time, args []string) error {
	printer := newCmdPrinter(cmd)

	if store == nil {
		resolved, _, err := resolveStore(cmd)
		if err != nil {
			printer.Error(err)
			return err
		}
		store = resolved
	}

	if len(args) > 0 {
		lines, err := strconv.Atoi(args[0])
		if err != nil || lines < 1 {
			userErr := output.NewUserError(fmt.Sprintf("invalid number of lines: %s", args[0]))
			printer.Error(userErr)
			return userErr
		}
		return lastLines(printer, store, lines)
	}
	return lastElapsed(printer, store, now())
}

// lastLines prints the most recent raw log lines.
func lastLines(printer *output.Printer, store *ledger.TSVStore, n int) error {
	lines, err := store.TailLines(n)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("reading log", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"lines": lines})
	}
	for _, line := range lines {
		printer.Println(line)
	}
	return nil
}

// lastElapsed prints the time since the last record when that record is
// from today. A last record from an earlier day prints nothing.
func lastElapsed(printer *output.Printer, store *ledger.TSVStore, now time.Time) error {
	last, _, err := store.LastRecord()
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyLog) {
			userErr := output.NewUserError("log has no records")
			printer.Error(userErr)
			return userErr
		}
		sysErr := output.NewSystemErrorWithCause("reading last record", err)
		printer.Error(sysErr)
		return sysErr
	}

	today := ledger.DateOf(last).Equal(ledger.DateOf(now))

	if printer.IsJSON() {
		data := map[string]any{
			"last":  last.Format(time.RFC3339),
			"today": today,
		}
		if today {
			data["elapsed"] = ledger.HHMM(now.Sub(last))
		}
		return printer.WriteJSON(data)
	}

	if today {
		printer.Println(fmt.Sprintf("Elapsed: %s", ledger.HHMM(now.Sub(last))))
	}
	return nil
}
