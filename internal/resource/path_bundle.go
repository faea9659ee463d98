//go:build bundle

package resource

import (
	"os"
	"path/filepath"
)

// Mode names the active resolution backend.
func Mode() string { return "bundle" }

// baseDir returns the directory of the executable.
func baseDir() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}
	return filepath.Dir(exePath), nil
}
