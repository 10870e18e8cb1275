// Package main is the entry point for the phpfix command, an editor-side
// integration that formats PHP sources through the php-cs-fixer binary.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/phpfix/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "phpfix",
	Short: "Format PHP sources through php-cs-fixer",
	Long: `phpfix drives the php-cs-fixer binary against PHP documents:
it resolves layered settings, discovers the project's fixer config,
runs the binary against a temporary copy of the document, and applies
the rewritten output.`,
}

func main() {
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("settings", "", "path to the phpfix TOML settings file")
	rootCmd.PersistentFlags().String("workspace", "", "workspace root (defaults to the working directory)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApplication builds a session from the persistent flags and hooks
// the terminal notification sink up to it.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	settings, err := cmd.Flags().GetString("settings")
	if err != nil {
		return nil, err
	}

	workspace, err := cmd.Flags().GetString("workspace")
	if err != nil {
		return nil, err
	}
	if workspace == "" {
		workspace, _ = os.Getwd()
	}

	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	application, err := app.New(app.Options{
		SettingsPath:  settings,
		WorkspaceRoot: workspace,
		LogLevel:      app.ParseLogLevel(level),
	})
	if err != nil {
		return nil, err
	}

	newTerminalSink(os.Stderr, noColor).attach(application.Notifier())

	return application, nil
}
