// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the cargoship command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cargoship",
		Short: "Container ship loading simulator",
		Long: TitleStyle.Render("cargoship") + SubtitleStyle.Render(" - Container ship loading simulator") + `

cargoship models liquid, gas and refrigerated containers and the ships
that carry them. Voyages are described in CUE manifests: a ship, its
containers and the steps to run (fill, empty, load, unload, replace).

` + SubtitleStyle.Render("Examples:") + `
  cargoship demo                   Run the built-in demonstration voyage
  cargoship run voyage.cue         Run a voyage manifest
  cargoship validate voyage.cue    Check a manifest without running it
  cargoship config show            Show current configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/cargoship/config.cue)")

	rootCmd.AddCommand(newDemoCommand(app))
	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process. This is called by main.main().
func Execute() {
	os.Exit(Run())
}

// Run builds the command tree, runs it with the process arguments and
// returns the exit code.
func Run() int {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(errorPrefix)+" "+err.Error())
		return ExitFailure
	}

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return ExitFailure
	}
	return 0
}
