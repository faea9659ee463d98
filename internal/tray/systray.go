package tray

import (
	"fyne.io/systray"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

type systrayMenu struct {
	toggle *systray.MenuItem
}

func (m systrayMenu) SetToggleLabel(label string) {
	m.toggle.SetTitle(label)
}

// Start registers the icon and menu with the system tray and returns the
// function that removes them. The tray runs alongside another toolkit's
// main loop, so Start does not block.
func (c *Controller) Start(icon []byte) (end func()) {
	// Must be set before the item is exported so a left click toggles
	// instead of opening the menu.
	systray.SetOnTapped(c.tap)

	start, end := systray.RunWithExternalLoop(func() { c.onReady(icon) }, nil)
	start()
	return end
}

func (c *Controller) onReady(icon []byte) {
	systray.SetIcon(icon)
	systray.SetTooltip(config.WindowTitle)

	toggle := systray.AddMenuItem(toggleLabel(c.overlayVisible), "Show or hide the crosshair")
	settings := systray.AddMenuItem(config.LabelSettings, "Adjust the crosshair")
	systray.AddSeparator()
	exit := systray.AddMenuItem(config.LabelExit, "Quit "+config.AppName)

	c.menu = systrayMenu{toggle: toggle}
	go c.loop(toggle.ClickedCh, settings.ClickedCh, exit.ClickedCh)
}
