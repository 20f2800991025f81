// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"github.com/cargoship/cargoship/internal/config"
	"github.com/cargoship/cargoship/internal/issue"
	"github.com/cargoship/cargoship/internal/manifest"
	"github.com/cargoship/cargoship/pkg/cargo"
)

// voyageRequest captures how a manifest should be run.
type voyageRequest struct {
	Format config.OutputFormat
	Strict bool
	// Summary prints a styled summary after a text-mode run.
	Summary bool
}

// loadManifest parses the manifest at path and maps failures onto the issue
// catalog.
func loadManifest(path string) (*manifest.Manifest, error) {
	m, err := manifest.Parse(path)
	if err == nil {
		return m, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return nil, issue.NewErrorContext().
			WithOperation("load manifest").
			WithResource(path).
			WithSuggestion("Check the path for typos").
			WithSuggestion("Run 'cargoship demo' to see a working voyage").
			WithIssue(issue.ManifestNotFoundId).
			Wrap(err).
			BuildError()
	}

	return nil, invalidManifestError(path, err)
}

func invalidManifestError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("parse manifest").
		WithResource(path).
		WithSuggestion("Run 'cargoship validate " + path + "' for the full list of problems").
		WithSuggestion("Run 'cargoship demo --source' for an example manifest").
		WithIssue(issue.ManifestInvalidId).
		Wrap(err).
		BuildError()
}

// runVoyage builds and runs m, writing reports to the app's stdout.
func (a *App) runVoyage(ctx context.Context, m *manifest.Manifest, req voyageRequest) error {
	if req.Format == "" {
		req.Format = a.cfg.Output.Format
	}
	if err := req.Format.Validate(); err != nil {
		return err
	}

	var out io.Writer = a.stdout
	if req.Format == config.OutputTOML {
		out = io.Discard
	}

	voyage, err := m.Build(
		manifest.WithLogger(a.logger),
		manifest.WithReporter(out),
		manifest.WithStrict(req.Strict),
	)
	if err != nil {
		return invalidManifestError(m.FilePath, err)
	}

	report, runErr := voyage.Run(ctx, out)

	switch req.Format {
	case config.OutputTOML:
		if err := toml.NewEncoder(a.stdout).Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		if req.Summary {
			fmt.Fprintln(a.stdout, renderSummary(report))
		}
	}

	if runErr != nil {
		return classifyRunError(runErr)
	}

	if rejected := report.Rejections(); len(rejected) > 0 {
		a.logger.Warn("ship rejected operations", "count", len(rejected), "ship", report.Ship.Name)
	}
	return nil
}

// classifyRunError attaches the issue catalog entry and exit code matching
// the failure of a voyage run.
func classifyRunError(err error) error {
	switch {
	case errors.Is(err, cargo.ErrOverfill):
		return newServiceError(err, issue.CargoOverfillId)
	case errors.Is(err, manifest.ErrRejected):
		return &ExitError{Code: ExitRejected, Err: newServiceError(err, issue.ShipRejectedId)}
	default:
		return err
	}
}

// renderSummary renders the final ship state as a bordered box.
func renderSummary(report *manifest.Report) string {
	s := report.Ship
	body := TitleStyle.Render(s.Name) + "\n" +
		fmt.Sprintf("%s %d/%d\n", CmdStyle.Render("containers:"), len(s.Containers), s.MaxContainerNum) +
		fmt.Sprintf("%s %skg/%skg (%.1f%%)\n", CmdStyle.Render("weight:"), s.TotalWeight, s.MaxWeight, s.Utilization()*100)

	rejected := len(report.Rejections())
	if rejected > 0 {
		body += WarningStyle.Render(fmt.Sprintf("%d of %d steps rejected", rejected, len(report.Steps)))
	} else {
		body += SuccessStyle.Render(fmt.Sprintf("%d steps completed", len(report.Steps)))
	}

	return summaryBoxStyle.Render(body)
}
