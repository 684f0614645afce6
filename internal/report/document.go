package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"lineagg/internal/aggregate"
	"lineagg/internal/numeric"
)

const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Document is the JSON audit record of one run.
type Document struct {
	RunID     string         `json:"run_id"`
	Source    string         `json:"source"`
	Status    string         `json:"status"`
	Summary   DocumentCounts `json:"summary"`
	Lines     []DocumentLine `json:"lines"`
	Error     *DocumentError `json:"error,omitempty"`
	Completed bool           `json:"completed"`
}

// DocumentCounts mirrors the aggregate counters.
type DocumentCounts struct {
	Sum       int64 `json:"sum"`
	Valid     int   `json:"valid"`
	Malformed int   `json:"malformed"`
}

// DocumentLine is one per-line outcome.
type DocumentLine struct {
	Line   int             `json:"line"`
	Status string          `json:"status"`
	Value  *int64          `json:"value,omitempty"`
	Raw    string          `json:"raw,omitempty"`
	Reason *numeric.Reason `json:"reason,omitempty"`
}

// DocumentError is the categorised fatal error. Detail carries the raw cause
// and is only filled when the reporter was built with detail enabled.
type DocumentError struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
}

// DocumentReporter builds a Document from reporter events.
type DocumentReporter struct {
	doc    Document
	detail bool
}

// NewDocumentReporter starts a document for src under a fresh run id.
func NewDocumentReporter(src string, detail bool) *DocumentReporter {
	return &DocumentReporter{
		doc: Document{
			RunID:  uuid.NewString(),
			Source: src,
			Status: StatusRunning,
			Lines:  []DocumentLine{},
		},
		detail: detail,
	}
}

func (d *DocumentReporter) OnValid(line int, value int64) {
	v := value
	d.doc.Lines = append(d.doc.Lines, DocumentLine{Line: line, Status: aggregate.StatusValid.String(), Value: &v})
	d.doc.Summary.Valid++
	d.doc.Summary.Sum += value
}

func (d *DocumentReporter) OnMalformed(line int, raw string, reason numeric.Reason) {
	r := reason
	d.doc.Lines = append(d.doc.Lines, DocumentLine{Line: line, Status: aggregate.StatusMalformed.String(), Raw: raw, Reason: &r})
	d.doc.Summary.Malformed++
}

func (d *DocumentReporter) OnSummary(result aggregate.Result) {
	d.doc.Summary = DocumentCounts{Sum: result.Sum, Valid: result.Valid, Malformed: result.Malformed}
	d.doc.Status = StatusCompleted
	d.doc.Completed = true
}

func (d *DocumentReporter) OnFatal(err error) {
	cat := Classify(err)
	de := &DocumentError{Category: cat.Name, Message: cat.Message}
	if d.detail {
		de.Detail = err.Error()
	}
	d.doc.Error = de
	d.doc.Status = StatusFailed
}

// Fail records an error that happened before aggregation started, such as
// a resolution failure.
func (d *DocumentReporter) Fail(err error) {
	d.OnFatal(err)
}

// Document returns a copy of the document built so far.
func (d *DocumentReporter) Document() Document {
	out := d.doc
	out.Lines = append([]DocumentLine(nil), d.doc.Lines...)
	if out.Lines == nil {
		out.Lines = []DocumentLine{}
	}
	return out
}

// EncodeDocument writes doc as indented JSON.
func EncodeDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteDocument validates doc and writes it to path, creating parent
// directories as needed.
func WriteDocument(path string, doc Document) error {
	if path == "" {
		return fmt.Errorf("report path is required")
	}
	if err := ValidateDocument(doc); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
