package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultManifestMarkers identifies a package root when no markers are configured.
var DefaultManifestMarkers = []string{"package.json"}

// FindManifestRoot walks up from start to the nearest directory containing
// one of the manifest markers. If the filesystem root is reached without a
// match, the absolute start directory is returned.
func FindManifestRoot(start string, markers []string) (string, error) {
	if len(markers) == 0 {
		markers = DefaultManifestMarkers
	}

	startDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory %s: %w", start, err)
	}

	currentDir := startDir
	for {
		found, err := hasManifest(currentDir, markers)
		if err != nil {
			return "", err
		}
		if found {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)

		// Reached the filesystem root without finding a manifest.
		if parentDir == currentDir {
			return startDir, nil
		}
		currentDir = parentDir
	}
}

// hasManifest reports whether dir directly contains any of the markers.
// Markers containing glob characters are matched against the directory entries.
func hasManifest(dir string, markers []string) (bool, error) {
	for _, marker := range markers {
		if marker == "" {
			continue
		}

		if strings.ContainsAny(marker, "*?[{") {
			matches, err := doublestar.Glob(os.DirFS(dir), marker)
			if err != nil {
				return false, fmt.Errorf("invalid manifest marker %q: %w", marker, err)
			}
			for _, match := range matches {
				if info, err := os.Stat(filepath.Join(dir, match)); err == nil && !info.IsDir() {
					return true, nil
				}
			}
			continue
		}

		fileInfo, err := os.Stat(filepath.Join(dir, marker))
		if err == nil {
			if !fileInfo.IsDir() {
				return true, nil
			}
		} else if !os.IsNotExist(err) {
			// Anything other than "not found" (e.g. permission issues) is surfaced.
			return false, fmt.Errorf("error checking for %s at %s: %w", marker, dir, err)
		}
	}
	return false, nil
}

// ResolveDirectory returns dir as an absolute path, using base for relative
// paths and base itself when dir is empty.
func ResolveDirectory(dir, base string) string {
	if dir == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(base, dir)
}
