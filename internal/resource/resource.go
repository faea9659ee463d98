// Package resource locates files shipped next to the application. A source
// run resolves against the working directory; a build with -tags bundle
// resolves against the directory holding the executable.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a resource does not exist at its resolved path.
var ErrNotFound = errors.New("resource not found")

// ResolvePath returns the absolute path of name for the active backend.
func ResolvePath(name string) (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", fmt.Errorf("error resolving resource '%s': %w", name, err)
	}
	return joinBase(base, name), nil
}

func joinBase(base, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(base, name)
}

// Load reads the resource called name.
func Load(name string) ([]byte, error) {
	path, err := ResolvePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading resource '%s': %w", path, err)
	}
	return data, nil
}
