package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber signals that the provided string is not a number.
var ErrNotANumber = errors.New("input must be a valid number")

// ErrNegative signals that the provided value is negative.
var ErrNegative = errors.New("square roots of negative numbers are not supported")

// ParseInteger trims surrounding whitespace and parses a base-10 int64.
// On failure the returned Reason says why; the bool reports success.
func ParseInteger(text string) (int64, Reason, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, ReasonEmpty, false
	}

	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ReasonOutOfRange, false
		}
		return 0, ReasonNotAnInteger, false
	}
	return v, ReasonNone, true
}

// AddChecked returns a+b, or false when the result does not fit in an int64.
func AddChecked(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// SquareRoot parses text as a floating point number and returns its square root.
func SquareRoot(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return math.Sqrt(v), nil
}
