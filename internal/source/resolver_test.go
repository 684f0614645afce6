package source

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietResolver() *Resolver {
	return NewResolver(log.New(io.Discard, "", 0))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve_RegularFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "numbers.txt", "1\n2\n")

	src, err := quietResolver().Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name())
	assert.Equal(t, int64(4), src.Size())

	rc, err := src.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(b))
}

func TestResolve_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	src, err := quietResolver().Resolve(context.Background(), path)
	assert.Nil(t, src)
	assert.True(t, errors.Is(err, ErrNotFound))

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, KindNotFound, resErr.Kind)
	assert.Equal(t, path, resErr.Path)
}

func TestResolve_EmptyPathIsNotFound(t *testing.T) {
	_, err := quietResolver().Resolve(context.Background(), "  ")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResolve_ParentIsAFile(t *testing.T) {
	parent := writeFile(t, t.TempDir(), "plain.txt", "1\n")

	_, err := quietResolver().Resolve(context.Background(), filepath.Join(parent, "child.txt"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResolve_Directory(t *testing.T) {
	_, err := quietResolver().Resolve(context.Background(), t.TempDir())
	assert.True(t, errors.Is(err, ErrNotAFile))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestResolve_AccessDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses read permission checks")
	}
	path := writeFile(t, t.TempDir(), "secret.txt", "1\n")
	require.NoError(t, os.Chmod(path, 0o200))

	_, err := quietResolver().Resolve(context.Background(), path)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestResolve_CancelledContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "numbers.txt", "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietResolver().Resolve(ctx, path)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestResolve_StopsAtFirstFailingCheck(t *testing.T) {
	var ran []string
	r := quietResolver()
	r.Checks = []Check{
		NewCheck("first", func(ctx context.Context, input *Input) error {
			ran = append(ran, "first")
			return &ResolutionError{Kind: KindAccessDenied, Path: input.Path}
		}),
		NewCheck("second", func(ctx context.Context, input *Input) error {
			ran = append(ran, "second")
			return nil
		}),
	}

	_, err := r.Resolve(context.Background(), "anything")
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.Equal(t, []string{"first"}, ran)
}

func TestResolve_RequiresMetadata(t *testing.T) {
	r := quietResolver()
	r.Checks = []Check{
		NewCheck("noop", func(ctx context.Context, input *Input) error { return nil }),
	}

	_, err := r.Resolve(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata")
}

func TestFileSource_OpenAfterRemoval(t *testing.T) {
	path := writeFile(t, t.TempDir(), "numbers.txt", "1\n")
	src, err := quietResolver().Resolve(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, err = src.Open(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResolutionError_Message(t *testing.T) {
	err := &ResolutionError{Kind: KindNotAFile, Path: "/tmp"}
	assert.Equal(t, "resolve /tmp: entry is not a regular file", err.Error())
	assert.Equal(t, "NOT_A_FILE", KindNotAFile.String())
}
