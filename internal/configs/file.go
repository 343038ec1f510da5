package configs

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
	"github.com/PolarWolf314/envdrop/internal/utils"
)

// FileName is the optional project configuration file, looked up in the
// working directory.
const FileName = ".envdrop.toml"

// FileConfig mirrors .envdrop.toml. Empty fields are treated as unset.
type FileConfig struct {
	Filter      string   `toml:"filter"`
	Name        string   `toml:"name"`
	Destination string   `toml:"destination"`
	Markers     []string `toml:"markers"`
	Overwrite   *bool    `toml:"overwrite"`
	Record      string   `toml:"record"`
}

// DefaultFileConfig is what `envdrop config init` writes.
func DefaultFileConfig() FileConfig {
	overwrite := true
	return FileConfig{
		Filter:    ".*",
		Markers:   append([]string(nil), utils.DefaultManifestMarkers...),
		Overwrite: &overwrite,
	}
}

// LoadFileConfig reads dir/.envdrop.toml. A missing file yields an empty
// config and no error.
func LoadFileConfig(dir string) (*FileConfig, error) {
	configPath := filepath.Join(dir, FileName)

	config := &FileConfig{}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, configPath, err)
	}
	return config, nil
}

// SaveFileConfig writes config to dir/.envdrop.toml and returns the path.
func SaveFileConfig(dir string, config FileConfig) (string, error) {
	configPath := filepath.Join(dir, FileName)
	if err := SaveTOML(configPath, config); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", configPath, err)
	}
	return configPath, nil
}
