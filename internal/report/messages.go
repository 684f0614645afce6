// Package report renders aggregation outcomes. Every adapter implements
// aggregate.Reporter; Describe maps errors onto user-facing categories.
package report

import (
	"context"
	"errors"

	"lineagg/internal/aggregate"
	"lineagg/internal/source"
)

// Category is a user-facing error class.
type Category struct {
	Name    string
	Message string
}

var (
	CategoryNotFound     = Category{Name: "not_found", Message: "Error: The specified file does not exist."}
	CategoryAccessDenied = Category{Name: "access_denied", Message: "Error: Access to the file is denied."}
	CategoryNotAFile     = Category{Name: "not_a_file", Message: "Error: The specified path is not a file."}
	CategoryIO           = Category{Name: "io", Message: "Error: An I/O error occurred while reading the file."}
	CategoryCancelled    = Category{Name: "cancelled", Message: "Error: Processing was cancelled."}
	CategoryUnexpected   = Category{Name: "unexpected", Message: "An unexpected error occurred."}
)

// Classify returns the category for err. Resolution errors win over the
// fatal wrapper so a file that vanished between resolve and open still reads
// as not found.
func Classify(err error) Category {
	var ferr *aggregate.FatalError
	switch {
	case errors.Is(err, source.ErrNotFound):
		return CategoryNotFound
	case errors.Is(err, source.ErrAccessDenied):
		return CategoryAccessDenied
	case errors.Is(err, source.ErrNotAFile):
		return CategoryNotAFile
	case errors.Is(err, aggregate.ErrCancelled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return CategoryCancelled
	case errors.As(err, &ferr):
		return CategoryIO
	default:
		return CategoryUnexpected
	}
}

// Describe returns the message shown to the user for err. Raw cause text is
// never included.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return Classify(err).Message
}
