// Package tray owns the notification-area icon: its menu, the left-click
// toggle, and the visibility flag both of them share.
package tray

import "github.com/iburimskiy/crosshair-overlay/internal/config"

// Overlay is what the tray drives. Every method must be safe to call from
// the tray goroutine.
type Overlay interface {
	Show()
	Hide()
	OpenSettings()
	Quit()
}

// Menu relabels the visibility item.
type Menu interface {
	SetToggleLabel(label string)
}

// Cue is played on every visibility toggle.
type Cue interface {
	Play()
}

// Controller holds the overlay visibility flag. Its methods are called from
// a single goroutine.
type Controller struct {
	overlay Overlay
	menu    Menu
	cue     Cue

	overlayVisible bool
	tapped         chan struct{}
}

// New creates a controller for an overlay that is already showing.
func New(overlay Overlay, cue Cue) *Controller {
	return &Controller{
		overlay:        overlay,
		cue:            cue,
		overlayVisible: true,
		tapped:         make(chan struct{}, 1),
	}
}

// OverlayVisible reports the tray's view of the overlay.
func (c *Controller) OverlayVisible() bool {
	return c.overlayVisible
}

// Toggle hides a visible overlay or shows a hidden one.
func (c *Controller) Toggle() {
	if c.overlayVisible {
		c.overlay.Hide()
	} else {
		c.overlay.Show()
	}
	c.overlayVisible = !c.overlayVisible

	if c.menu != nil {
		c.menu.SetToggleLabel(toggleLabel(c.overlayVisible))
	}
	if c.cue != nil {
		c.cue.Play()
	}
}

// OpenSettings asks the overlay for its settings panel.
func (c *Controller) OpenSettings() {
	c.overlay.OpenSettings()
}

// Exit hides the overlay and stops its loop.
func (c *Controller) Exit() {
	c.overlay.Hide()
	c.overlay.Quit()
}

func toggleLabel(visible bool) string {
	if visible {
		return config.LabelHide
	}
	return config.LabelShow
}

// tap is the icon's left-click handler. It runs on the tray library's
// thread, so it only signals the controller goroutine.
func (c *Controller) tap() {
	select {
	case c.tapped <- struct{}{}:
	default:
	}
}

// loop serialises every tray event onto one goroutine until Exit.
func (c *Controller) loop(toggle, settings, exit <-chan struct{}) {
	for {
		select {
		case <-toggle:
			c.Toggle()
		case <-c.tapped:
			c.Toggle()
		case <-settings:
			c.OpenSettings()
		case <-exit:
			c.Exit()
			return
		}
	}
}
