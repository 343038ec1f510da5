package secrets

import (
	"fmt"
	"regexp"

	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
)

// MatchAll is the filter used when none is configured.
const MatchAll = ".*"

// Masker registers values that must never appear in logs.
type Masker interface {
	AddMask(value string)
}

// CompilePattern compiles a filter expression. An empty expression matches
// every name.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		expr = MatchAll
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", kerrors.ErrInvalidPattern, expr, err)
	}
	return pattern, nil
}

// Filter returns the secrets whose name matches pattern, in their original
// order. Every value is masked before its name is tested, so rejected values
// are protected too.
func Filter(m *SecretMap, pattern *regexp.Regexp, masker Masker) *SecretMap {
	filtered := NewSecretMap()
	m.Each(func(key, value string) {
		masker.AddMask(value)
		if pattern.MatchString(key) {
			filtered.Set(key, value)
		}
	})
	return filtered
}
