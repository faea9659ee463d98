//go:build windows

package resource

// IconName is the tray icon; the Windows tray wants ICO bytes.
const IconName = "dot.ico"
