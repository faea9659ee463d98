//go:build linux

package tray

import (
	"log"

	"github.com/godbus/dbus/v5"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

const watcherName = "org.kde.StatusNotifierWatcher"

// Available reports whether a StatusNotifier host is listening on the
// session bus.
func Available() bool {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		if config.Debug() {
			log.Printf("tray: no session bus: %v", err)
		}
		return false
	}
	defer conn.Close()

	var owned bool
	err = conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, watcherName).Store(&owned)
	if err != nil {
		if config.Debug() {
			log.Printf("tray: NameHasOwner(%s): %v", watcherName, err)
		}
		return false
	}
	return owned
}
