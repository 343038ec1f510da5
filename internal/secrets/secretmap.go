package secrets

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
)

// SecretMap maps secret names to values, keeping the order in which the
// names were first seen.
type SecretMap struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewSecretMap returns an empty map.
func NewSecretMap() *SecretMap {
	return &SecretMap{entries: orderedmap.New[string, string]()}
}

// ParsePayload decodes a JSON object of string values, such as the output
// of toJSON(secrets) in a workflow. On failure it returns an empty map
// together with an error wrapping ErrPayloadParse.
func ParsePayload(payload string) (*SecretMap, error) {
	data := bytes.TrimSpace([]byte(payload))
	if len(data) == 0 {
		return NewSecretMap(), fmt.Errorf("%w: payload is empty", kerrors.ErrPayloadParse)
	}
	if !json.Valid(data) {
		return NewSecretMap(), fmt.Errorf("%w: payload is not valid JSON", kerrors.ErrPayloadParse)
	}
	if data[0] != '{' {
		return NewSecretMap(), fmt.Errorf("%w: payload is not a JSON object", kerrors.ErrPayloadParse)
	}

	m := NewSecretMap()
	if err := m.entries.UnmarshalJSON(data); err != nil {
		// Values that are not strings end up here.
		return NewSecretMap(), fmt.Errorf("%w: %v", kerrors.ErrPayloadParse, err)
	}
	return m, nil
}

// Set adds or replaces a secret. Replacing keeps the original position.
func (m *SecretMap) Set(key, value string) {
	m.entries.Set(key, value)
}

// Get returns the value for key.
func (m *SecretMap) Get(key string) (string, bool) {
	return m.entries.Get(key)
}

// Len returns the number of secrets.
func (m *SecretMap) Len() int {
	return m.entries.Len()
}

// Keys returns the secret names in order.
func (m *SecretMap) Keys() []string {
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every secret in order.
func (m *SecretMap) Each(fn func(key, value string)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *SecretMap) MarshalJSON() ([]byte, error) {
	return m.entries.MarshalJSON()
}
