// Package main provides the entry point for the idid CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/export"
	"github.com/gorewood/idid/internal/ledger"
)

// newSumCmd creates the sum command.
func newSumCmd() *cobra.Command {
	return newSumCmdInternal(nil, time.Now)
}

// newSumCmdInternal creates the sum command with optional store and
// clock injection. If store is nil, the log is resolved when the
// command runs.
func newSumCmdInternal(store *ledger.TSVStore, now func() time.Time) *cobra.Command {
	var rangeFlags []string
	var secondsFlag bool
	var totalFlag bool

	cmd := &cobra.Command{
		Use:   "sum DATE... [--range FROM..TO]",
		Short: "Sum accomplishments by day",
		Long: `Total accomplishment time per day, oldest day first.

` + dateArgsHelp + `

Examples:
  idid sum today
  idid sum --range mon..fri --total
  idid sum 1 0 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, store, now, args, rangeFlags, secondsFlag, totalFlag)
		},
	}

	cmd.Flags().StringArrayVarP(&rangeFlags, "range", "r", nil,
		"Pick entries inclusive of FROM..TO, endpoints in either order (repeatable)")
	cmd.Flags().BoolVarP(&secondsFlag, "seconds", "s", false, "Show totals in seconds")
	cmd.Flags().BoolVarP(&totalFlag, "total", "t", false, "Show total after summing daily entries")

	return cmd
}

// runSum executes the sum command.
func runSum(
	cmd *cobra.Command,
	store *ledger.TSVStore,
	now func() time.Time,
	dates, ranges []string,
	inSeconds, withTotal bool,
) error {
	printer := newCmdPrinter(cmd)

	entries, err := pickForArgs(cmd, store, now, dates, ranges)
	if err != nil {
		printer.Error(err)
		return err
	}

	sums := export.SumByDay(entries)
	if printer.IsJSON() {
		return export.FormatSumsJSON(printer, sums, inSeconds, withTotal)
	}
	export.FormatSumsTSV(printer, sums, inSeconds, withTotal)
	return nil
}
