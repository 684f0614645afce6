// Package source resolves input paths into openable line sources. Resolution
// only inspects metadata; the stream is opened later by the consumer.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"syscall"
)

// Input carries what checks have learned about a path so far.
type Input struct {
	Path string
	Info fs.FileInfo
}

// Check is a read-only inspection run before a source is handed out.
// Checks run in order; the first error stops resolution.
type Check interface {
	Name() string
	Run(ctx context.Context, input *Input) error
}

// Resolver executes checks and produces a FileSource.
type Resolver struct {
	Checks []Check
	Logger *log.Logger
}

// NewResolver constructs a Resolver with the default checks.
func NewResolver(logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{Checks: DefaultChecks(), Logger: logger}
}

// DefaultChecks returns existence, entry type and read permission checks,
// in that order.
func DefaultChecks() []Check {
	return []Check{
		NewCheck("exists", statEntry),
		NewCheck("regular_file", requireRegular),
		NewCheck("readable", requireReadable),
	}
}

// Resolve validates path and returns a lazily-openable handle.
// Failures are *ResolutionError unless ctx is done or the check itself broke.
func (r *Resolver) Resolve(ctx context.Context, path string) (*FileSource, error) {
	input := &Input{Path: path}
	for _, check := range r.Checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.Logger.Printf("running path check %s: %s", check.Name(), path)
		if err := check.Run(ctx, input); err != nil {
			r.Logger.Printf("path check %s failed: %v", check.Name(), err)
			return nil, err
		}
	}
	if input.Info == nil {
		return nil, fmt.Errorf("resolve %s: no check recorded file metadata", path)
	}
	return &FileSource{path: path, info: input.Info}, nil
}

func statEntry(_ context.Context, input *Input) error {
	if strings.TrimSpace(input.Path) == "" {
		return &ResolutionError{Kind: KindNotFound, Path: input.Path}
	}
	info, err := os.Stat(input.Path)
	if err != nil {
		return classify(input.Path, err)
	}
	input.Info = info
	return nil
}

func requireRegular(_ context.Context, input *Input) error {
	if input.Info == nil {
		return fmt.Errorf("regular_file check requires metadata for %s", input.Path)
	}
	if !input.Info.Mode().IsRegular() {
		return &ResolutionError{
			Kind:  KindNotAFile,
			Path:  input.Path,
			Cause: fmt.Errorf("mode %s", input.Info.Mode().Type()),
		}
	}
	return nil
}

func requireReadable(_ context.Context, input *Input) error {
	if err := readable(input.Path, input.Info); err != nil {
		return classify(input.Path, err)
	}
	return nil
}

// classify maps an os error onto the resolution taxonomy.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return &ResolutionError{Kind: KindNotFound, Path: path, Cause: err}
	case errors.Is(err, fs.ErrPermission):
		return &ResolutionError{Kind: KindAccessDenied, Path: path, Cause: err}
	case errors.Is(err, syscall.EISDIR):
		return &ResolutionError{Kind: KindNotAFile, Path: path, Cause: err}
	default:
		return fmt.Errorf("inspect %s: %w", path, err)
	}
}

// FileSource is a resolved file that has not been opened yet.
type FileSource struct {
	path string
	info fs.FileInfo
}

// Name returns the path the source was resolved from.
func (s *FileSource) Name() string { return s.path }

// Size returns the file size observed at resolution time.
func (s *FileSource) Size() int64 { return s.info.Size() }

// Open opens the file for reading. The caller owns the returned handle.
// Entries that changed since resolution are reported with the same taxonomy.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, classify(s.path, err)
	}
	return f, nil
}

// funcCheck adapts a function into a Check.
type funcCheck struct {
	name  string
	runFn func(ctx context.Context, input *Input) error
}

// NewCheck builds a Check from a name and function.
func NewCheck(name string, runFn func(ctx context.Context, input *Input) error) Check {
	return &funcCheck{name: name, runFn: runFn}
}

func (c *funcCheck) Name() string { return c.name }
func (c *funcCheck) Run(ctx context.Context, input *Input) error {
	return c.runFn(ctx, input)
}
