//go:build !windows

package resource

// IconName is the tray icon.
const IconName = "dot.png"
