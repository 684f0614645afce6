package report

import (
	"log"

	"lineagg/internal/aggregate"
	"lineagg/internal/numeric"
)

// Log writes one log line per event, including raw error causes.
type Log struct {
	Logger *log.Logger
}

// NewLog wraps logger. A nil logger uses log.Default().
func NewLog(logger *log.Logger) *Log {
	if logger == nil {
		logger = log.Default()
	}
	return &Log{Logger: logger}
}

func (l *Log) OnValid(line int, value int64) {
	l.Logger.Printf("line %d: VALID value=%d", line, value)
}

func (l *Log) OnMalformed(line int, raw string, reason numeric.Reason) {
	l.Logger.Printf("line %d: MALFORMED reason=%s raw=%q", line, reason, raw)
}

func (l *Log) OnSummary(result aggregate.Result) {
	l.Logger.Printf("summary: valid=%d malformed=%d sum=%d", result.Valid, result.Malformed, result.Sum)
}

func (l *Log) OnFatal(err error) {
	l.Logger.Printf("fatal (%s): %v", Classify(err).Name, err)
}
