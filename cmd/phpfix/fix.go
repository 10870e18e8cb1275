package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix <file> [file...]",
	Short: "Fix PHP files in place",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	defer application.Shutdown()

	var failed bool
	for _, path := range args {
		changed, err := application.FormatFile(cmd.Context(), path)
		switch {
		case err != nil:
			failed = true
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		case changed:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: fixed\n", path)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: unchanged\n", path)
		}
	}

	if failed {
		return fmt.Errorf("some files were not fixed")
	}
	return nil
}
