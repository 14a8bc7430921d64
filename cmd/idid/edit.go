// Package main provides the entry point for the idid CLI.
package main

import (
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/idid/internal/output"
)

// newEditCmd creates the edit command.
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the log file using $EDITOR",
		Long: `Open the log file in your editor. $EDITOR wins over the config file's
editor setting. Vi variants open positioned at the last line.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}

	return cmd
}

// runEdit executes the edit command.
func runEdit(cmd *cobra.Command, _ []string) error {
	printer := newCmdPrinter(cmd)

	store, cfg, err := resolveStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = cfg.Editor
	}
	if editor == "" {
		userErr := output.NewUserError("EDITOR environment variable is not set")
		printer.Error(userErr)
		return userErr
	}

	args := []string{store.Path()}
	// Vi variants open at the end of the file.
	if strings.HasSuffix(editor, "vi") || strings.HasSuffix(editor, "vim") {
		args = append(args, "+$")
	}

	editorCmd := exec.Command(editor, args...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		sysErr := output.NewSystemErrorWithCause("editor process failed", err)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}
