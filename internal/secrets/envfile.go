package secrets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnvExtension is appended to the configured file name.
const EnvExtension = ".env"

// EnvFileName returns the artifact name for base. An empty base gives ".env".
func EnvFileName(base string) string {
	return base + EnvExtension
}

// FormatEnv renders each secret as KEY = "VALUE" followed by CRLF.
// Quotes inside values are written as-is.
func FormatEnv(m *SecretMap) []byte {
	var b bytes.Buffer
	m.Each(func(key, value string) {
		b.WriteString(key)
		b.WriteString(` = "`)
		b.WriteString(value)
		b.WriteString("\"\r\n")
	})
	return b.Bytes()
}

// WriteEnvFile writes the formatted secrets to dir/fileName and returns the
// full path. An empty map produces an empty file.
func WriteEnvFile(m *SecretMap, dir, fileName string) (string, error) {
	envPath := filepath.Join(dir, fileName)
	if err := os.WriteFile(envPath, FormatEnv(m), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return envPath, nil
}
