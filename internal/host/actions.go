package host

import (
	"sync"

	"github.com/sethvargo/go-githubactions"
)

// Actions talks to the GitHub Actions runner through workflow commands
// and the files named by GITHUB_OUTPUT.
type Actions struct {
	action *githubactions.Action

	mu     sync.Mutex
	failed bool
}

// NewActions returns a host bound to the runner environment. Options are
// passed through to githubactions.New, tests use them to swap the writer
// and environment.
func NewActions(opts ...githubactions.Option) *Actions {
	return &Actions{action: githubactions.New(opts...)}
}

// Input returns the value of INPUT_<NAME>, trimmed.
func (a *Actions) Input(name string) string {
	return a.action.GetInput(name)
}

func (a *Actions) AddMask(value string) {
	if value == "" {
		return
	}
	a.action.AddMask(value)
}

func (a *Actions) Infof(format string, args ...any) {
	a.action.Infof(format, args...)
}

func (a *Actions) Warnf(format string, args ...any) {
	a.action.Warningf(format, args...)
}

func (a *Actions) SetOutput(key, value string) {
	a.action.SetOutput(key, value)
}

func (a *Actions) SetFailed(message string) {
	a.mu.Lock()
	a.failed = true
	a.mu.Unlock()
	a.action.Errorf("%s", message)
}

func (a *Actions) Failed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failed
}
