package ui

import (
	"fmt"
	"io"
)

// Status is the outcome a console line reports.
type Status int

const (
	StatusInfo Status = iota
	StatusWarning
	StatusFailure
	StatusSuccess
)

type mark struct {
	glyph     string
	formatter Formatter
}

var marks = map[Status]mark{
	StatusInfo:    {"→", Info},
	StatusWarning: {"⚠", Warning},
	StatusFailure: {"✗", Error},
	StatusSuccess: {"✓", Success},
}

// StatusLine renders text behind the coloured mark for status. Only the
// mark is coloured.
func StatusLine(status Status, text string) string {
	m, ok := marks[status]
	if !ok {
		m = marks[StatusInfo]
	}
	return m.formatter.Sprint(m.glyph) + " " + text
}

// Redactor hides sensitive values in text.
type Redactor interface {
	Redact(text string) string
}

// Printer writes status lines. Text passes through Redactor before it is
// formatted, so a secret never reaches Out.
type Printer struct {
	Out      io.Writer
	Redactor Redactor
}

// Printf formats a message and writes it as one status line.
func (p Printer) Printf(status Status, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if p.Redactor != nil {
		text = p.Redactor.Redact(text)
	}
	fmt.Fprintln(p.Out, StatusLine(status, text))
}
