// Package main provides the entry point for the idid CLI.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/output"
	"github.com/gorewood/idid/internal/when"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	return newAddCmdInternal(nil, time.Now)
}

// newAddCmdInternal creates the add command with optional store and
// clock injection. If store is nil, the log is resolved when the
// command runs.
func newAddCmdInternal(store *ledger.TSVStore, now func() time.Time) *cobra.Command {
	var whenFlag string
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Record an accomplishment",
		Long: `Record an accomplishment you just finished.

The record's timestamp marks when the work ended; the time since the
previous record is how long it took. Backdate the end with -t:

  idid add Fixed the flaky importer test
  idid add -t 20 Reviewed the quarterly report   # finished 20 minutes ago
  idid add -t 4:55pm Sent the invoice`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, store, now, whenFlag, quietFlag, args)
		},
	}

	cmd.Flags().StringVarP(&whenFlag, "when", "t", "",
		`End time: minutes ago or clock time, e.g. "8am", "13:15", "4:55pm"`)
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress the praise response")

	return cmd
}

// runAdd executes the add command.
func runAdd(
	cmd *cobra.Command,
	store *ledger.TSVStore,
	now func() time.Time,
	whenFlag string,
	quiet bool,
	args []string,
) error {
	printer := newCmdPrinter(cmd)

	if store == nil {
		resolved, cfg, err := resolveStore(cmd)
		if err != nil {
			printer.Error(err)
			return err
		}
		store = resolved
		quiet = quiet || cfg.Quiet
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		err := output.NewUserError("missing text")
		printer.Error(err)
		return err
	}

	moment := now()
	ended, err := when.TimeOfDay(whenFlag, moment)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	last, _, lastErr := store.LastRecord()
	if lastErr != nil && !errors.Is(lastErr, ledger.ErrEmptyLog) {
		sysErr := output.NewSystemErrorWithCause("reading last record", lastErr)
		printer.Error(sysErr)
		return sysErr
	}

	if err := store.Append(ended, text); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing record", err)
		printer.Error(sysErr)
		return sysErr
	}

	hasElapsed := lastErr == nil
	var elapsed time.Duration
	if hasElapsed {
		elapsed = moment.Sub(last)
	}

	if printer.IsJSON() {
		data := map[string]any{
			"recorded": ended.Format(time.RFC3339),
			"text":     text,
		}
		if hasElapsed {
			data["elapsed"] = ledger.HHMM(elapsed)
		}
		printer.Success("recorded", data)
		return nil
	}

	switch {
	case hasElapsed && elapsed > 12*time.Hour:
		printer.Warn("elapsed time from last is %s", ledger.HHMM(elapsed))
	case !quiet && hasElapsed:
		printer.Println(fmt.Sprintf("%s for %s.  %s",
			ended.Format("Mon 03:04 PM"), ledger.HHMM(elapsed), praise()))
	case !quiet:
		// First record in the log; there is no elapsed time to report.
		printer.Println(fmt.Sprintf("%s.  %s", ended.Format("Mon 03:04 PM"), praise()))
	}
	return nil
}
