package host

import (
	"fmt"
	"sync"
)

// Recorder is an in-memory Host for tests. It records every call.
type Recorder struct {
	mu       sync.Mutex
	Masks    []string
	Infos    []string
	Warnings []string
	Failures []string
	Outputs  map[string]string
	Inputs   map[string]string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Outputs: make(map[string]string),
		Inputs:  make(map[string]string),
	}
}

func (r *Recorder) Input(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Inputs[name]
}

func (r *Recorder) AddMask(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Masks = append(r.Masks, value)
}

func (r *Recorder) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Recorder) SetOutput(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outputs[key] = value
}

func (r *Recorder) SetFailed(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, message)
}

func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failures) > 0
}
