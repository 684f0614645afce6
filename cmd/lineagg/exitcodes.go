package main

import (
	"errors"

	"lineagg/internal/source"
)

// Exit codes returned by the lineagg CLI.
const (
	ExitSuccess    = 0  // Completed, malformed lines included
	ExitFatal      = 1  // Read failure, cancellation or unexpected error
	ExitResolution = 2  // Path not found, access denied or not a file
	ExitUsage      = 64 // Bad arguments, flags or configuration
)

// exitError carries an exit code through cobra's error return. The message
// has already been shown to the user when shown is set.
type exitError struct {
	code  int
	err   error
	shown bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: ExitUsage, err: err}
}

// runError picks the exit code for a failure after arguments were accepted.
func runError(err error, shown bool) error {
	code := ExitFatal
	var resErr *source.ResolutionError
	if errors.As(err, &resErr) {
		code = ExitResolution
	}
	return &exitError{code: code, err: err, shown: shown}
}
