package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatter_NoColorDecorations(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code", Code, "envdrop create", "`envdrop create`"},
		{"Path", Path, "packages/web/.env", "packages/web/.env"},
		{"Highlight", Highlight, "APP_API_KEY", "'APP_API_KEY'"},
		{"Muted", Muted, ".envdrop.toml", "(.envdrop.toml)"},
		{"Success", Success, "✓", "✓"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.formatter.Sprint(tc.input); got != tc.want {
				t.Errorf("Sprint(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}

	if got := Highlight.Sprintf("%s.env", "production"); got != "'production.env'" {
		t.Errorf("Sprintf() = %q", got)
	}
}

func TestFormatter_Color(t *testing.T) {
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })

	got := Code.Sprint("envdrop config init")
	if strings.Contains(got, "`") {
		t.Errorf("Expected no backticks with colour, got %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Expected ANSI escape codes, got %q", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":       "\n",
		"done":   "done\n",
		"done\n": "done\n",
		"a\nb":   "a\nb\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		status Status
		want   string
	}{
		{StatusInfo, "→ FOO copied"},
		{StatusWarning, "⚠ FOO copied"},
		{StatusFailure, "✗ FOO copied"},
		{StatusSuccess, "✓ FOO copied"},
		{Status(99), "→ FOO copied"},
	}
	for _, tc := range tests {
		if got := StatusLine(tc.status, "FOO copied"); got != tc.want {
			t.Errorf("StatusLine(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

// fixedRedactor hides one fixed value.
type fixedRedactor struct {
	secret string
}

func (r fixedRedactor) Redact(text string) string {
	return strings.ReplaceAll(text, r.secret, "***")
}

func TestPrinter_RedactsBeforeWriting(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	p := Printer{Out: &buf, Redactor: fixedRedactor{secret: "hunter2"}}
	p.Printf(StatusFailure, "could not use %s", "hunter2")

	if got := buf.String(); got != "✗ could not use ***\n" {
		t.Errorf("Printf wrote %q", got)
	}
}

func TestPrinter_WithoutRedactor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	Printer{Out: &buf}.Printf(StatusInfo, "%s moved to %s", ".env", "/repo")

	if got := buf.String(); got != "→ .env moved to /repo\n" {
		t.Errorf("Printf wrote %q", got)
	}
}
