//go:build !linux

package tray

// Available reports whether a system tray exists. Windows and macOS always
// have one.
func Available() bool {
	return true
}
