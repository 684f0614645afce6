// Package numeric classifies raw text into integer values and computes
// square roots, reporting why a token was rejected.
package numeric

import "fmt"

// Reason explains why a record was not accepted as a valid integer.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonNotAnInteger
	ReasonOutOfRange
	ReasonOverflow
	ReasonNegative
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmpty:
		return "empty"
	case ReasonNotAnInteger:
		return "not_an_integer"
	case ReasonOutOfRange:
		return "out_of_range"
	case ReasonOverflow:
		return "overflow"
	case ReasonNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Phrase is the human-readable fragment used in warning lines.
func (r Reason) Phrase() string {
	switch r {
	case ReasonEmpty:
		return "is empty"
	case ReasonNotAnInteger:
		return "contains non-integer values"
	case ReasonOutOfRange:
		return "contains an integer outside the supported range"
	case ReasonOverflow:
		return "would overflow the running sum"
	case ReasonNegative:
		return "contains a negative value"
	default:
		return "could not be classified"
	}
}

// MarshalText encodes the reason by name so reports stay readable.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	for c := ReasonNone; c <= ReasonNegative; c++ {
		if c.String() == string(text) {
			*r = c
			return nil
		}
	}
	return fmt.Errorf("unknown reason %q", string(text))
}
