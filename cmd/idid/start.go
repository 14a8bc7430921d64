// Package main provides the entry point for the idid CLI.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/output"
	"github.com/gorewood/idid/internal/when"
)

// newStartCmd creates the start command.
func newStartCmd() *cobra.Command {
	return newStartCmdInternal(nil, time.Now)
}

// newStartCmdInternal creates the start command with optional store and
// clock injection. If store is nil, the log is resolved when the
// command runs.
func newStartCmdInternal(store *ledger.TSVStore, now func() time.Time) *cobra.Command {
	var whenFlag string
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start recording time",
		Long: `Mark the start of a work session.

Time before the marker does not count toward the next accomplishment,
so run this when you sit down rather than letting the gap since last
night inflate your first entry of the day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStart(cmd, store, now, whenFlag, quietFlag)
		},
	}

	cmd.Flags().StringVarP(&whenFlag, "when", "t", "",
		`Start time: minutes ago or clock time, e.g. "8am", "13:15", "4:55pm"`)
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress the praise response")

	return cmd
}

// runStart executes the start command.
func runStart(
	cmd *cobra.Command,
	store *ledger.TSVStore,
	now func() time.Time,
	whenFlag string,
	quiet bool,
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

	started, err := when.TimeOfDay(whenFlag, now())
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if err := store.AppendStart(started); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing record", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		printer.Success("started", map[string]any{
			"started": started.Format(time.RFC3339),
		})
		return nil
	}

	if !quiet {
		printer.Println(fmt.Sprintf("Starting at %s.  %s",
			started.Format("03:04 PM"), praise()))
	}
	return nil
}
