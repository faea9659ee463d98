//go:build !bundle

package resource

import "os"

// Mode names the active resolution backend.
func Mode() string { return "source" }

func baseDir() (string, error) {
	return os.Getwd()
}
