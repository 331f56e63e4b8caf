// Package diag defines the diagnostic sink the tokenizer reports malformed
// input to, and a small in-memory collaborator implementation.
package diag

import "fmt"

// Sink receives diagnostics at the (line, column) of the offending byte.
// Only AddError is used by the tokenizer core: per spec, lexical warnings
// ("Interpreting non ascii codepoint N.") are reported as AddError too --
// the tokenizer has no notion of warning-vs-error severity of its own, it
// just always calls AddError. AddWarning exists on the interface for
// collaborators (and potential future callers) that do distinguish severity.
type Sink interface {
	AddError(line, column int, format string, args ...interface{})
	AddWarning(line, column int, format string, args ...interface{})
}

// Severity distinguishes the two diagnostic kinds a Sink can record.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported problem, at the position of the byte that
// triggered it.
type Diagnostic struct {
	Severity Severity
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}

// CollectingSink is a Sink that accumulates every diagnostic it receives, in
// order. It is the concrete Sink used by the tokenizer's own tests and by
// cmd/tokendump.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func (c *CollectingSink) AddError(line, column int, format string, args ...interface{}) {
	c.add(SeverityError, line, column, format, args...)
}

func (c *CollectingSink) AddWarning(line, column int, format string, args ...interface{}) {
	c.add(SeverityWarning, line, column, format, args...)
}

func (c *CollectingSink) add(sev Severity, line, column int, format string, args ...interface{}) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{
		Severity: sev,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors returns only the error-severity diagnostics, in order.
func (c *CollectingSink) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}
