package report

import (
	"lineagg/internal/aggregate"
	"lineagg/internal/numeric"
)

// EventKind identifies a captured reporter call.
type EventKind string

const (
	EventValid     EventKind = "valid"
	EventMalformed EventKind = "malformed"
	EventSummary   EventKind = "summary"
	EventFatal     EventKind = "fatal"
)

// Event is one captured reporter call. Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Line   int
	Value  int64
	Raw    string
	Reason numeric.Reason
	Result *aggregate.Result
	Err    error
}

// Capture keeps every event in memory. Not safe for concurrent use.
type Capture struct {
	Events []Event
}

func (c *Capture) OnValid(line int, value int64) {
	c.Events = append(c.Events, Event{Kind: EventValid, Line: line, Value: value})
}

func (c *Capture) OnMalformed(line int, raw string, reason numeric.Reason) {
	c.Events = append(c.Events, Event{Kind: EventMalformed, Line: line, Raw: raw, Reason: reason})
}

func (c *Capture) OnSummary(result aggregate.Result) {
	c.Events = append(c.Events, Event{Kind: EventSummary, Result: &result})
}

func (c *Capture) OnFatal(err error) {
	c.Events = append(c.Events, Event{Kind: EventFatal, Err: err})
}

// Kinds lists event kinds in order.
func (c *Capture) Kinds() []EventKind {
	out := make([]EventKind, 0, len(c.Events))
	for _, e := range c.Events {
		out = append(out, e.Kind)
	}
	return out
}
