package overlay

import "github.com/hajimehoshi/ebiten/v2"

// Window is the part of the native window the overlay changes at runtime.
type Window interface {
	// SetPassthrough lets pointer input fall through to the windows below.
	SetPassthrough(enabled bool)
	// Fit moves the window to the origin and resizes it.
	Fit(width, height int)
}

type ebitenWindow struct{}

func (ebitenWindow) SetPassthrough(enabled bool) {
	ebiten.SetWindowMousePassthrough(enabled)
}

func (ebitenWindow) Fit(width, height int) {
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowSize(width, height)
}

// primarySize returns the size of the primary monitor.
func primarySize() (int, int, bool) {
	monitors := ebiten.AppendMonitors(nil)
	if len(monitors) == 0 {
		return 0, 0, false
	}
	w, h := monitors[0].Size()
	return w, h, w > 0 && h > 0
}
