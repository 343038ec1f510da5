package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter colours a piece of output. Without colour it wraps the text in
// open/close instead, so the distinction survives in plain logs.
type Formatter struct {
	color       *color.Color
	open, close string
}

func newFormatter(attr color.Attribute, open, close string) Formatter {
	return Formatter{color: color.New(attr), open: open, close: close}
}

var (
	// Code is a command the user can run: yellow or `backticks`.
	Code = newFormatter(color.FgYellow, "`", "`")

	// Path is a file or directory: yellow or bare.
	Path = newFormatter(color.FgYellow, "", "")

	// Highlight is a secret name, filter or file name: cyan or 'quoted'.
	Highlight = newFormatter(color.FgCyan, "'", "'")

	// Muted is secondary detail: grey or (parenthesised).
	Muted = newFormatter(color.FgHiBlack, "(", ")")

	Success = newFormatter(color.FgGreen, "", "")
	Warning = newFormatter(color.FgYellow, "", "")
	Error   = newFormatter(color.FgRed, "", "")
	Info    = newFormatter(color.FgCyan, "", "")
)

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor honours NO_COLOR (https://no-color.org/) and fatih/color's own
// terminal detection.
func noColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}
