package executor

import (
	"errors"
	"fmt"
	"strings"
)

// LaunchError reports a command that could not be started for a file.
// It is non-fatal: the run continues with remaining files.
type LaunchError struct {
	Path    string // File the command was rendered for
	Command string // Rendered command line
	Err     error  // OS-level launch error
}

// Error implements the error interface for LaunchError.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch command for %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// RunError aggregates per-file launch failures from a single run.
type RunError struct {
	Failures []*LaunchError // Individual launch failures
	Total    int            // Total number of commands attempted
}

// Add records a launch failure.
func (e *RunError) Add(launchErr *LaunchError) {
	e.Failures = append(e.Failures, launchErr)
}

// Error implements the error interface for RunError.
func (e *RunError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d command(s) failed to launch", len(e.Failures), e.Total))
	for _, f := range e.Failures {
		sb.WriteString(fmt.Sprintf("\n  - %s", f.Error()))
	}
	return sb.String()
}

// Unwrap returns the launch errors for error unwrapping support.
// This allows errors.Is and errors.As to traverse the error chain.
func (e *RunError) Unwrap() []error {
	if len(e.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// IsLaunchError checks if the error is or wraps a LaunchError.
func IsLaunchError(err error) bool {
	if err == nil {
		return false
	}
	var le *LaunchError
	return errors.As(err, &le)
}
