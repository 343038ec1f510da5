package secrets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
)

func TestParsePayload_PreservesOrder(t *testing.T) {
	m, err := ParsePayload(`{"ZETA":"1","ALPHA":"2","MID":"3"}`)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"ZETA", "ALPHA", "MID"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("Keys() diff (-want +got)\n%s", diff)
	}

	if v, ok := m.Get("ALPHA"); !ok || v != "2" {
		t.Errorf("Get(ALPHA) = %q, %t; want \"2\", true", v, ok)
	}
}

func TestParsePayload_DecodesEscapes(t *testing.T) {
	m, err := ParsePayload(`{"MULTI":"line1\nline2","QUOTE":"say \"hi\"","UNI":"café"}`)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	tests := map[string]string{
		"MULTI": "line1\nline2",
		"QUOTE": `say "hi"`,
		"UNI":   "café",
	}
	for key, want := range tests {
		if got, _ := m.Get(key); got != want {
			t.Errorf("Get(%s) = %q, want %q", key, got, want)
		}
	}
}

func TestParsePayload_EmptyObject(t *testing.T) {
	m, err := ParsePayload(`{}`)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Expected empty map, got %d entries", m.Len())
	}
}

func TestParsePayload_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"Empty", ""},
		{"Whitespace", "   \n\t"},
		{"InvalidJSON", `{"FOO":`},
		{"NotJSON", "FOO=bar"},
		{"Array", `["FOO","BAR"]`},
		{"String", `"FOO"`},
		{"NumberValue", `{"FOO":1}`},
		{"ObjectValue", `{"FOO":{"nested":"x"}}`},
		{"TrailingGarbage", `{"FOO":"1"} extra`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParsePayload(tc.payload)
			if err == nil {
				t.Fatalf("Expected error for payload %q, got nil", tc.payload)
			}
			if !errors.Is(err, kerrors.ErrPayloadParse) {
				t.Errorf("Expected ErrPayloadParse, got: %v", err)
			}
			if m == nil {
				t.Fatal("Expected an empty map alongside the error, got nil")
			}
			if m.Len() != 0 {
				t.Errorf("Expected empty map, got %d entries", m.Len())
			}
		})
	}
}

func TestSecretMap_SetKeepsPosition(t *testing.T) {
	m := NewSecretMap()
	m.Set("A", "1")
	m.Set("B", "2")
	m.Set("A", "3")

	if diff := cmp.Diff([]string{"A", "B"}, m.Keys()); diff != "" {
		t.Errorf("Keys() diff (-want +got)\n%s", diff)
	}
	if v, _ := m.Get("A"); v != "3" {
		t.Errorf("Get(A) = %q, want \"3\"", v)
	}
}

func TestSecretMap_MarshalJSON(t *testing.T) {
	m := NewSecretMap()
	m.Set("FOO", "1")
	m.Set("BAR", "2")

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `{"FOO":"1","BAR":"2"}` {
		t.Errorf("MarshalJSON() = %s, want {\"FOO\":\"1\",\"BAR\":\"2\"}", data)
	}
}
