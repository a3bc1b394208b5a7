// Package fsutil writes files that refdeck generates, such as the starter
// configuration.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when WriteOptions.Mode is zero.
const DefaultFileMode fs.FileMode = 0o644

// ErrExists is returned when the target exists and Overwrite is not set.
var ErrExists = errors.New("file already exists")

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// Mode is the permission of the written file.
	Mode fs.FileMode

	// Overwrite replaces an existing file.
	Overwrite bool
}

// WriteFile writes content to path through a temp file in the same
// directory, which is renamed into place once synced. A failed write leaves
// any existing file untouched. It reports whether an existing file was
// replaced.
func WriteFile(ctx context.Context, path string, content []byte, opts WriteOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	mode := opts.Mode
	if mode == 0 {
		mode = DefaultFileMode
	}

	replaced := false
	switch info, err := os.Stat(path); {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("write %s: is a directory", path)
	case err == nil:
		if !opts.Overwrite {
			return false, fmt.Errorf("%w: %s", ErrExists, path)
		}
		replaced = true
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return false, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return false, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return false, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return false, fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return replaced, nil
}
