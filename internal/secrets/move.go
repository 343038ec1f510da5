package secrets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
)

// rename is os.Rename, replaced in tests to simulate a cross-device move.
var rename = os.Rename

// MoveOptions configures MoveFile.
type MoveOptions struct {
	// Overwrite replaces an existing file at the destination.
	Overwrite bool
}

// MoveFile relocates source into destinationDir, keeping its file name, and
// returns the new path. destinationDir is created first if it is missing;
// only the last path element is created, never its ancestors.
func MoveFile(source, destinationDir string, opts MoveOptions) (string, error) {
	destination := filepath.Join(destinationDir, filepath.Base(source))
	fail := func(err error) (string, error) {
		return "", &kerrors.MoveError{Source: source, Destination: destination, Err: err}
	}

	sourceInfo, err := os.Stat(source)
	if os.IsNotExist(err) {
		return fail(kerrors.ErrSourceNotFound)
	}
	if err != nil {
		return fail(err)
	}

	if _, err := os.Stat(destinationDir); os.IsNotExist(err) {
		if err := os.Mkdir(destinationDir, 0755); err != nil {
			return fail(fmt.Errorf("creating destination directory: %w", err))
		}
	} else if err != nil {
		return fail(err)
	}

	if destInfo, err := os.Stat(destination); err == nil {
		if os.SameFile(sourceInfo, destInfo) {
			return destination, nil
		}
		if !opts.Overwrite {
			return fail(kerrors.ErrDestinationExists)
		}
	}

	if err := rename(source, destination); err != nil {
		if !errors.Is(err, syscall.EXDEV) {
			return fail(err)
		}
		// Different filesystems: copy, then drop the original.
		if err := copyFile(source, destination, sourceInfo.Mode().Perm()); err != nil {
			return fail(err)
		}
		if err := os.Remove(source); err != nil {
			return fail(fmt.Errorf("removing source after copy: %w", err))
		}
	}

	return destination, nil
}

func copyFile(source, destination string, perm os.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(destination, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(destination)
		return fmt.Errorf("copying to %s: %w", destination, err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("syncing %s: %w", destination, err)
	}
	return out.Close()
}
