package aggregate

import (
	"errors"
	"fmt"
)

// FatalKind says why a run stopped early.
type FatalKind int

const (
	FatalIO FatalKind = iota + 1
	FatalCancelled
)

func (k FatalKind) String() string {
	switch k {
	case FatalIO:
		return "IO"
	case FatalCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// ErrCancelled matches any FatalError caused by cancellation.
var ErrCancelled = errors.New("aggregation cancelled")

// FatalError halts a run. The partial Result is returned alongside it.
// Line is the last line that was fully applied.
type FatalError struct {
	Kind  FatalKind
	Line  int
	Cause error
}

func (e *FatalError) Error() string {
	switch e.Kind {
	case FatalCancelled:
		return fmt.Sprintf("aggregation cancelled after line %d: %v", e.Line, e.Cause)
	default:
		return fmt.Sprintf("read failed after line %d: %v", e.Line, e.Cause)
	}
}

func (e *FatalError) Unwrap() error {
	return e.Cause
}

// Is matches ErrCancelled for cancellation failures.
func (e *FatalError) Is(target error) bool {
	return target == ErrCancelled && e.Kind == FatalCancelled
}
