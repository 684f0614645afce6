package source

import (
	"errors"
	"fmt"
)

// Kind categorises why a path could not be resolved.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindAccessDenied
	KindNotAFile
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindAccessDenied:
		return "ACCESS_DENIED"
	case KindNotAFile:
		return "NOT_A_FILE"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrNotFound matches a ResolutionError of KindNotFound.
	ErrNotFound = errors.New("no entry exists at path")
	// ErrAccessDenied matches a ResolutionError of KindAccessDenied.
	ErrAccessDenied = errors.New("entry cannot be opened for reading")
	// ErrNotAFile matches a ResolutionError of KindNotAFile.
	ErrNotAFile = errors.New("entry is not a regular file")
)

// ResolutionError is returned by Resolve when a path fails pre-flight checks.
type ResolutionError struct {
	Kind  Kind
	Path  string
	Cause error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolve %s: %s: %v", e.Path, e.sentinel(), e.Cause)
	}
	return fmt.Sprintf("resolve %s: %s", e.Path, e.sentinel())
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match the package sentinels by kind.
func (e *ResolutionError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ResolutionError) sentinel() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindAccessDenied:
		return ErrAccessDenied
	case KindNotAFile:
		return ErrNotAFile
	default:
		return nil
	}
}
