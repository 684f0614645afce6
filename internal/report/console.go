package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"lineagg/internal/aggregate"
	"lineagg/internal/numeric"
)

// Console prints outcomes in the plain line format. Fatal messages go to
// errOut so stdout stays parseable.
type Console struct {
	out    io.Writer
	errOut io.Writer
	warn   *color.Color
	fail   *color.Color
}

// NewConsole builds a Console. colored forces ANSI colour on or off
// regardless of terminal detection.
func NewConsole(out, errOut io.Writer, colored bool) *Console {
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed, color.Bold)
	if colored {
		warn.EnableColor()
		fail.EnableColor()
	} else {
		warn.DisableColor()
		fail.DisableColor()
	}
	return &Console{out: out, errOut: errOut, warn: warn, fail: fail}
}

//nolint:errcheck // console output; write errors are not actionable
func (c *Console) OnValid(line int, value int64) {
	fmt.Fprintf(c.out, "Processed line %d: %d\n", line, value)
}

//nolint:errcheck // console output; write errors are not actionable
func (c *Console) OnMalformed(line int, _ string, reason numeric.Reason) {
	c.warn.Fprintf(c.out, "Warning: Line %d %s and was skipped.\n", line, reason.Phrase())
}

//nolint:errcheck // console output; write errors are not actionable
func (c *Console) OnSummary(result aggregate.Result) {
	fmt.Fprintln(c.out, result.SummaryLine())
}

//nolint:errcheck // console output; write errors are not actionable
func (c *Console) OnFatal(err error) {
	c.fail.Fprintln(c.errOut, Describe(err))
}
