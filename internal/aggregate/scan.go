package aggregate

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// Scan opens src and calls fn for every complete line, in order. The
// source is closed on every return path. It returns the number of lines
// handed to fn and, on failure, a *FatalError.
//
// ctx is checked before each line, so cancellation never interrupts fn.
// A line cut short by a read error is dropped.
func Scan(ctx context.Context, src Source, fn func(Record)) (int, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return 0, fatal(ctx, 0, err)
	}
	defer rc.Close()

	br := bufio.NewReader(&ctxReader{ctx: ctx, r: rc})
	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return line, fatal(ctx, line, err)
		}

		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return line, fatal(ctx, line, err)
		}
		if text != "" {
			line++
			fn(Record{Line: line, Text: trimEOL(text)})
		}
		if err != nil {
			return line, nil
		}
	}
}

func fatal(ctx context.Context, line int, cause error) *FatalError {
	kind := FatalIO
	if ctxErr := ctx.Err(); ctxErr != nil {
		kind = FatalCancelled
		cause = ctxErr
	} else if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		kind = FatalCancelled
	}
	return &FatalError{Kind: kind, Line: line, Cause: cause}
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// ctxReader refuses further reads once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
