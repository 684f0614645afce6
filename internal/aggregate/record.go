package aggregate

import (
	"fmt"

	"lineagg/internal/numeric"
)

// Status marks a record as accepted or skipped.
type Status int

const (
	StatusValid Status = iota
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "VALID"
	case StatusMalformed:
		return "MALFORMED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Record is one input line. Line numbers start at 1.
type Record struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// ParsedRecord is a classified Record. Value is set only for valid records,
// Reason only for malformed ones.
type ParsedRecord struct {
	Record
	Status Status         `json:"status"`
	Value  int64          `json:"value"`
	Reason numeric.Reason `json:"reason,omitempty"`
}

// Result accumulates the outcome of one pass over a source.
type Result struct {
	Sum       int64          `json:"sum"`
	Valid     int            `json:"valid"`
	Malformed int            `json:"malformed"`
	Outcomes  []ParsedRecord `json:"outcomes"`
}

// Total is the number of lines read.
func (r Result) Total() int {
	return r.Valid + r.Malformed
}

// SummaryLine emits the final human-readable line.
func (r Result) SummaryLine() string {
	return fmt.Sprintf("Sum of all processed integers: %d", r.Sum)
}
