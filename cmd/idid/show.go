// Package main provides the entry point for the idid CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/export"
	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/output"
	"github.com/gorewood/idid/internal/when"
)

const dateArgsHelp = `DATE can be any of:

  - Days before today. 0 is today and 1 is yesterday; max 999.
  - Literal "today" or "yesterday".
  - YYYYMMDD (dashes optional).
  - YYMMDD (leading 0, dashes optional) starting in the year 2000.
  - Last MMDD (leading 0, dashes optional); within 364ish days.
  - Last week day with optional numeric suffix to add weeks.
    "mon" is last Monday and "mon1" goes back an additional week.`

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return newShowCmdInternal(nil, time.Now)
}

// newShowCmdInternal creates the show command with optional store and
// clock injection. If store is nil, the log is resolved when the
// command runs.
func newShowCmdInternal(store *ledger.TSVStore, now func() time.Time) *cobra.Command {
	var rangeFlags []string
	var secondsFlag bool

	cmd := &cobra.Command{
		Use:   "show DATE... [--range FROM..TO]",
		Short: "Show accomplishments",
		Long: `Show accomplishments for the given dates, most recent first.

` + dateArgsHelp + `

Examples:
  idid show today
  idid show mon tue
  idid show --range mon..fri --seconds
  idid show 0315 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, store, now, args, rangeFlags, secondsFlag)
		},
	}

	cmd.Flags().StringArrayVarP(&rangeFlags, "range", "r", nil,
		"Pick entries inclusive of FROM..TO, endpoints in either order (repeatable)")
	cmd.Flags().BoolVarP(&secondsFlag, "seconds", "s", false, "Show duration in seconds")

	return cmd
}

// runShow executes the show command.
func runShow(
	cmd *cobra.Command,
	store *ledger.TSVStore,
	now func() time.Time,
	dates, ranges []string,
	inSeconds bool,
) error {
	printer := newCmdPrinter(cmd)

	entries, err := pickForArgs(cmd, store, now, dates, ranges)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return export.FormatJSON(printer, entries, inSeconds)
	}
	export.FormatTSV(printer, entries, inSeconds)
	return nil
}

// pickForArgs resolves the store if needed, parses the date and range
// expressions, and collects every matching entry. An empty filter is a
// user error rather than an empty result.
func pickForArgs(
	cmd *cobra.Command,
	store *ledger.TSVStore,
	now func() time.Time,
	dates, ranges []string,
) ([]*ledger.Entry, error) {
	if store == nil {
		resolved, _, err := resolveStore(cmd)
		if err != nil {
			return nil, err
		}
		store = resolved
	}

	filter, err := when.Filter(dates, ranges, now())
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	if filter.Empty() {
		return nil, output.NewUserError("at least one date or range is required")
	}

	return pickAll(store, filter)
}
