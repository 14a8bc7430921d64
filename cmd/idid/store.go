// Package main provides the entry point for the idid CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/config"
	"github.com/gorewood/idid/internal/ledger"
	"github.com/gorewood/idid/internal/output"
)

// resolveStore locates the log file and returns a store over it. The
// --tsv persistent flag wins over $IDID_TSV, the config file, and the
// XDG default.
func resolveStore(cmd *cobra.Command) (*ledger.TSVStore, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, output.NewUserError(err.Error())
	}

	explicit := ""
	if flag := cmd.Root().PersistentFlags().Lookup("tsv"); flag != nil {
		explicit = flag.Value.String()
	}

	path, err := config.TSVPath(explicit, cfg)
	if err != nil {
		return nil, nil, output.NewUserError(err.Error())
	}
	return ledger.NewTSVStore(path), cfg, nil
}

// newCmdPrinter builds a printer on the command's stdout, honoring the
// --json persistent flag.
func newCmdPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())
}

// pickAll parses the date and range expressions, scans the log, and
// returns every matching entry, most recent first.
func pickAll(store *ledger.TSVStore, filter *ledger.DateFilter) ([]*ledger.Entry, error) {
	scanner, err := store.Pick(filter)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("opening log", err)
	}
	defer scanner.Close() //nolint:errcheck // read-only

	var entries []*ledger.Entry
	for scanner.Scan() {
		entries = append(entries, scanner.Entry())
	}
	if err := scanner.Err(); err != nil {
		return nil, output.NewSystemErrorWithCause("scanning log", err)
	}
	return entries, nil
}
