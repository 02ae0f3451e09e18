package syntax

import (
	"errors"
	"fmt"
)

// Severity tells whether a diagnostic aborts processing.
type Severity uint8

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

// Stage identifies which phase produced a diagnostic.
type Stage uint8

const (
	StageLexer Stage = iota
	StageParser
)

func (s Stage) String() string {
	if s == StageParser {
		return "parser"
	}
	return "lexer"
}

// Diagnostic is a located message from the lexer or parser.
// Errors are returned as *Diagnostic; warnings go to the warning handler.
type Diagnostic struct {
	Loc      SourceLoc
	Msg      string
	Severity Severity
	Stage    Stage
	Filename string // empty unless set with WithFilename

	// AtEOF is set when the error was detected at end of input, so more
	// text might have completed the construct.
	AtEOF bool
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Filename != "" {
		return fmt.Sprintf("%s:%s: %s", d.Filename, d.Loc, d.Msg)
	}
	return d.Loc.String() + ": " + d.Msg
}

// IsIncomplete reports whether err is a diagnostic raised because the
// input ended in the middle of a construct.
func IsIncomplete(err error) bool {
	var d *Diagnostic
	return errors.As(err, &d) && d.AtEOF
}

// Option configures a Lexer or Parser.
type Option func(*config)

type config struct {
	filename string
	warnh    func(d *Diagnostic)
}

// WithFilename sets the file name reported in diagnostics.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// WithWarningHandler installs a function called for every warning.
// Warnings are also kept and returned by Warnings.
func WithWarningHandler(h func(d *Diagnostic)) Option {
	return func(c *config) { c.warnh = h }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
