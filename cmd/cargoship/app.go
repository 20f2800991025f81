// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cargoship/cargoship/internal/config"
	"github.com/cargoship/cargoship/internal/logging"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App reference.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		// Set by the root command's persistent flags.
		verbose bool
		cfgFile string

		// Resolved by prepare before any subcommand runs.
		cfg    *config.Config
		logger *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: logging.Discard(),
	}, nil
}

// prepare loads configuration and installs the CLI logger. A broken config
// file is reported as a warning and defaults are used, so commands such as
// `config init` still work.
func (a *App) prepare(ctx context.Context) error {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}

	logger, err := logging.New(a.stderr, logging.Options{
		Level:      cfg.Log.Level,
		Verbose:    a.verbose,
		Prefix:     logging.DefaultPrefix,
		Timestamps: cfg.Log.Timestamps,
	})
	if err != nil {
		return err
	}
	a.logger = logger
	logging.InstallDefault(logger)

	return nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.cfgFile}
}

// glamourStyle returns the glamour style for issue rendering.
func (a *App) glamourStyle() string {
	return a.cfg.UI.ColorScheme.GlamourStyle()
}
