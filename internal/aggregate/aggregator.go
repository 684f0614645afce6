// Package aggregate sums integer lines from a source in a single forward
// pass. Lines that do not classify as integers are counted and reported but
// never stop the run; read failures and cancellation do, and the partial
// result is returned with the error.
package aggregate

import (
	"context"
	"io"
	"log"

	"lineagg/internal/numeric"
)

// Source is a named stream that can be opened once per run.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Reporter receives outcomes as they are produced. Calls are notifications
// only; nothing a reporter does affects the run.
type Reporter interface {
	OnValid(line int, value int64)
	OnMalformed(line int, raw string, reason numeric.Reason)
	OnSummary(result Result)
	OnFatal(err error)
}

// Options tune classification.
type Options struct {
	RejectNegative bool
}

// Aggregator runs the line scan.
type Aggregator struct {
	Options Options
	Logger  *log.Logger
}

// NewAggregator constructs an Aggregator. A nil logger uses log.Default().
func NewAggregator(opts Options, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{Options: opts, Logger: logger}
}

// Run reads src line by line and reports every outcome to reporter.
// On a clean end-of-stream it returns the complete Result and a nil error.
// Otherwise the error is a *FatalError and the Result holds every line
// applied before the failure.
func (a *Aggregator) Run(ctx context.Context, src Source, reporter Reporter) (Result, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}
	tally := NewTally(a.Options.RejectNegative)

	a.Logger.Printf("aggregating %s", src.Name())
	_, err := Scan(ctx, src, func(rec Record) {
		parsed := tally.Classify(rec)
		tally.Apply(parsed)
		notify(reporter, parsed)
	})
	if err != nil {
		a.Logger.Printf("aggregation halted: %v", err)
		reporter.OnFatal(err)
		return tally.Result(), err
	}

	result := tally.Result()
	a.Logger.Printf("completed %s (valid=%d malformed=%d sum=%d)", src.Name(), result.Valid, result.Malformed, result.Sum)
	reporter.OnSummary(result)
	return result, nil
}

func notify(reporter Reporter, p ParsedRecord) {
	switch p.Status {
	case StatusValid:
		reporter.OnValid(p.Line, p.Value)
	case StatusMalformed:
		reporter.OnMalformed(p.Line, p.Text, p.Reason)
	}
}

type nopReporter struct{}

func (nopReporter) OnValid(int, int64)                      {}
func (nopReporter) OnMalformed(int, string, numeric.Reason) {}
func (nopReporter) OnSummary(Result)                        {}
func (nopReporter) OnFatal(error)                           {}
