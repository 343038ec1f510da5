package host

import (
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	logger "github.com/PolarWolf314/envdrop/internal/logging"
	"github.com/PolarWolf314/envdrop/internal/ui"
)

// Redacted replaces masked values in console output.
const Redacted = "***"

// Output is a step output captured by the console host.
type Output struct {
	Key   string
	Value string
}

// Console is the host used outside GitHub Actions. It prints to a writer,
// redacting every masked value, and keeps outputs in memory.
type Console struct {
	Out    io.Writer
	Logger logger.Logger
	Getenv func(string) string

	mu       sync.Mutex
	masks    map[string]struct{}
	replacer *strings.Replacer
	outputs  []Output
	failed   bool
}

// NewConsole returns a console host writing to out.
func NewConsole(out io.Writer, log logger.Logger) *Console {
	return &Console{
		Out:    out,
		Logger: log,
		Getenv: os.Getenv,
		masks:  make(map[string]struct{}),
	}
}

// Input mirrors the runner convention so a step can be replayed locally:
// APP_SECRETS is read from INPUT_APP_SECRETS.
func (c *Console) Input(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(c.Getenv(key))
}

func (c *Console) AddMask(value string) {
	if value == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.masks[value]; ok {
		return
	}
	c.masks[value] = struct{}{}

	// Longest values first so a secret containing another is fully redacted.
	values := make([]string, 0, len(c.masks))
	for v := range c.masks {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if len(values[i]) != len(values[j]) {
			return len(values[i]) > len(values[j])
		}
		return values[i] < values[j]
	})

	pairs := make([]string, 0, len(values)*2)
	for _, v := range values {
		pairs = append(pairs, v, Redacted)
	}
	c.replacer = strings.NewReplacer(pairs...)
}

// Redact replaces every masked value in s.
func (c *Console) Redact(s string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.replacer == nil {
		return s
	}
	return c.replacer.Replace(s)
}

func (c *Console) Infof(format string, args ...any) {
	c.printer().Printf(ui.StatusInfo, format, args...)
}

func (c *Console) Warnf(format string, args ...any) {
	c.printer().Printf(ui.StatusWarning, format, args...)
}

func (c *Console) SetOutput(key, value string) {
	c.mu.Lock()
	c.outputs = append(c.outputs, Output{Key: key, Value: value})
	c.mu.Unlock()
	c.Logger.Debugf("Output %s=%s", key, c.Redact(value))
}

func (c *Console) SetFailed(message string) {
	c.mu.Lock()
	c.failed = true
	c.mu.Unlock()
	c.printer().Printf(ui.StatusFailure, "%s", message)
}

func (c *Console) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

// Outputs returns the outputs set so far, in order.
func (c *Console) Outputs() []Output {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Output(nil), c.outputs...)
}

// printer writes to Out with every masked value redacted.
func (c *Console) printer() ui.Printer {
	return ui.Printer{Out: c.Out, Redactor: c}
}
