package report

import (
	"lineagg/internal/aggregate"
	"lineagg/internal/numeric"
)

// Multi forwards every event to each reporter in order.
type Multi []aggregate.Reporter

func (m Multi) OnValid(line int, value int64) {
	for _, r := range m {
		r.OnValid(line, value)
	}
}

func (m Multi) OnMalformed(line int, raw string, reason numeric.Reason) {
	for _, r := range m {
		r.OnMalformed(line, raw, reason)
	}
}

func (m Multi) OnSummary(result aggregate.Result) {
	for _, r := range m {
		r.OnSummary(result)
	}
}

func (m Multi) OnFatal(err error) {
	for _, r := range m {
		r.OnFatal(err)
	}
}
