package aggregate

import "lineagg/internal/numeric"

// Tally classifies records against the running sum and commits them.
// Classification never mutates the tally; Apply does, one record at a time.
type Tally struct {
	result         Result
	rejectNegative bool
}

// NewTally returns an empty tally. With rejectNegative set, negative values
// are classified as malformed.
func NewTally(rejectNegative bool) *Tally {
	return &Tally{result: Result{Outcomes: []ParsedRecord{}}, rejectNegative: rejectNegative}
}

// Classify decides whether rec is valid given the current sum.
func (t *Tally) Classify(rec Record) ParsedRecord {
	v, reason, ok := numeric.ParseInteger(rec.Text)
	if !ok {
		return ParsedRecord{Record: rec, Status: StatusMalformed, Reason: reason}
	}
	if t.rejectNegative && v < 0 {
		return ParsedRecord{Record: rec, Status: StatusMalformed, Reason: numeric.ReasonNegative}
	}
	if _, ok := numeric.AddChecked(t.result.Sum, v); !ok {
		return ParsedRecord{Record: rec, Status: StatusMalformed, Reason: numeric.ReasonOverflow}
	}
	return ParsedRecord{Record: rec, Status: StatusValid, Value: v}
}

// Apply commits a classified record.
func (t *Tally) Apply(p ParsedRecord) {
	switch p.Status {
	case StatusValid:
		t.result.Sum += p.Value
		t.result.Valid++
	case StatusMalformed:
		t.result.Malformed++
	}
	t.result.Outcomes = append(t.result.Outcomes, p)
}

// Result returns a copy of the accumulated result.
func (t *Tally) Result() Result {
	out := t.result
	out.Outcomes = make([]ParsedRecord, len(t.result.Outcomes))
	copy(out.Outcomes, t.result.Outcomes)
	return out
}
