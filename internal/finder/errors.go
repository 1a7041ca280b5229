package finder

import (
	"errors"
	"fmt"
)

// InvalidPatternError reports a pattern source that could not be compiled,
// either because a regex source is syntactically invalid or because the
// translated wildcard pattern is not a valid expression.
type InvalidPatternError struct {
	Source string // Pattern source as supplied by the caller
	Err    error  // Underlying compile error
}

// Error implements the error interface for InvalidPatternError.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// InvalidDateError reports a date/time literal that matches none of the
// accepted formats.
type InvalidDateError struct {
	Text string // Literal as supplied by the caller
}

// Error implements the error interface for InvalidDateError.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date/time %q (expected YYYYMMDD[HHMM[SS]] or YYYY/MM/DD[-HH:MM[:SS]])", e.Text)
}

// DirectoryAccessError reports a subtree that could not be enumerated.
// It is non-fatal: traversal continues with sibling subtrees.
type DirectoryAccessError struct {
	Dir string // Directory that failed to enumerate
	Err error  // Underlying filesystem error
}

// Error implements the error interface for DirectoryAccessError.
func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// IsInvalidPattern checks if the error is or wraps an InvalidPatternError.
func IsInvalidPattern(err error) bool {
	var pe *InvalidPatternError
	return errors.As(err, &pe)
}

// IsInvalidDate checks if the error is or wraps an InvalidDateError.
func IsInvalidDate(err error) bool {
	var de *InvalidDateError
	return errors.As(err, &de)
}
