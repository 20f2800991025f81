// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/fang"

	"github.com/cargoship/cargoship/internal/issue"
)

// errorPrefix starts the one-line report of a failed command.
const errorPrefix = "An error occurred:"

// ServiceError is an error that carries an issue catalog ID for the CLI
// layer. Always create via newServiceError.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor returns the catalog entry attached to err, if any.
func issueFor(err error) *issue.Issue {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.IssueID != 0 {
		return issue.Get(svcErr.IssueID)
	}
	return issue.IssueOf(err)
}

// handleError is the fang error handler.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	a.reportError(w, err)
}

// reportError prints a single "An error occurred: <msg>" report and, in
// verbose mode, the matching issue catalog entry.
func (a *App) reportError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render(errorPrefix)+" "+formatErrorForDisplay(err, a.verbose))

	if !a.verbose {
		return
	}
	entry := issueFor(err)
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(a.glamourStyle())
	if renderErr != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", entry.Id(), "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
