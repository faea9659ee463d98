// Package overlay draws the crosshair dot in a transparent, click-through,
// always-on-top window covering the primary monitor, and hosts the settings
// panel on top of it.
//
// All state is owned by the ebiten game loop. Other goroutines talk to the
// overlay through Show, Hide, OpenSettings and Quit, which only queue
// commands for the next Update.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// ErrWindow wraps failures to create or run the overlay window.
var ErrWindow = errors.New("overlay window failed")

// Saver persists an appearance.
type Saver interface {
	Save(a crosshair.Appearance) error
}

// Cue is played after a successful Apply.
type Cue interface {
	Play()
}

// Options carries the overlay's collaborators. Nil fields get defaults.
type Options struct {
	Saver  Saver
	Picker ColorPicker
	Window Window
	Cue    Cue
	Icon   image.Image
}

type command int

const (
	cmdShow command = iota
	cmdHide
	cmdOpenSettings
	cmdQuit
)

// Overlay implements ebiten.Game.
type Overlay struct {
	appearance crosshair.Appearance
	visible    bool
	panel      *settingsPanel
	quitting   bool

	// layout size, updated by Layout
	width, height int
	// monitor size the window was last fitted to
	fitW, fitH int
	ticks      int

	commands chan command

	saver  Saver
	picker ColorPicker
	window Window
	cue    Cue
	icon   image.Image
}

// New creates a visible overlay showing a.
func New(a crosshair.Appearance, opts Options) *Overlay {
	o := &Overlay{
		appearance: a.Clamp(),
		visible:    true,
		commands:   make(chan command, config.CommandBuffer),
		saver:      opts.Saver,
		picker:     opts.Picker,
		window:     opts.Window,
		cue:        opts.Cue,
		icon:       opts.Icon,
	}
	if o.picker == nil {
		o.picker = PickColor
	}
	if o.window == nil {
		o.window = ebitenWindow{}
	}
	if o.cue == nil {
		o.cue = silentCue{}
	}
	return o
}

type silentCue struct{}

func (silentCue) Play() {}

// Show makes the dot visible. Safe from any goroutine.
func (o *Overlay) Show() { o.commands <- cmdShow }

// Hide stops drawing the dot without touching its appearance. Safe from any goroutine.
func (o *Overlay) Hide() { o.commands <- cmdHide }

// OpenSettings opens the settings panel, or re-seeds it when already open.
// Safe from any goroutine.
func (o *Overlay) OpenSettings() { o.commands <- cmdOpenSettings }

// Quit hides the dot and ends the game loop. Safe from any goroutine.
func (o *Overlay) Quit() { o.commands <- cmdQuit }

// Appearance returns the live appearance. Game loop only.
func (o *Overlay) Appearance() crosshair.Appearance {
	return o.appearance
}

// SetAppearance replaces the live appearance; the next frame shows it.
// Game loop only.
func (o *Overlay) SetAppearance(a crosshair.Appearance) {
	o.appearance = a.Clamp()
}

// Visible reports whether the dot is drawn. Game loop only.
func (o *Overlay) Visible() bool {
	return o.visible
}

// SettingsOpen reports whether the panel is showing. Game loop only.
func (o *Overlay) SettingsOpen() bool {
	return o.panel != nil
}

// Run configures the window and blocks until Quit.
func (o *Overlay) Run() error {
	w, h, ok := primarySize()
	if !ok {
		return fmt.Errorf("%w: no monitor found", ErrWindow)
	}

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	if o.icon != nil {
		ebiten.SetWindowIcon([]image.Image{o.icon})
	}
	o.window.Fit(w, h)
	o.fitW, o.fitH = w, h

	err := ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
		X11ClassName:      config.AppName,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: %v", ErrWindow, err)
	}
	return nil
}

func (o *Overlay) Update() error {
	o.ticks++
	if o.ticks%config.RefitInterval == 0 {
		o.refit()
	}
	return o.step(readPointer())
}

// step runs one frame of overlay logic against already sampled input.
func (o *Overlay) step(in pointerInput) error {
	o.drainCommands()
	if o.quitting {
		return ebiten.Termination
	}
	if o.panel != nil {
		o.handlePanel(o.panel.update(in))
	}
	return nil
}

func (o *Overlay) drainCommands() {
	for {
		select {
		case cmd := <-o.commands:
			o.apply(cmd)
		default:
			return
		}
	}
}

func (o *Overlay) apply(cmd command) {
	switch cmd {
	case cmdShow:
		o.visible = true
	case cmdHide:
		o.visible = false
	case cmdOpenSettings:
		o.openPanel()
	case cmdQuit:
		o.visible = false
		o.quitting = true
	}
}

func (o *Overlay) openPanel() {
	x, y := config.PanelX, config.PanelY
	if o.width > 0 && x+config.PanelWidth > o.width {
		x = max(0, o.width-config.PanelWidth)
	}
	if o.height > 0 && y+config.PanelHeight > o.height {
		y = max(0, o.height-config.PanelHeight)
	}
	o.panel = newSettingsPanel(o.appearance, x, y)
	o.window.SetPassthrough(false)
}

func (o *Overlay) closePanel() {
	o.panel = nil
	o.window.SetPassthrough(true)
}

func (o *Overlay) handlePanel(action panelAction) {
	switch action {
	case actionChanged:
		o.SetAppearance(o.panel.appearance())

	case actionPickColor:
		c, ok, err := o.picker(o.panel.color)
		o.panel.resetPointer()
		if err != nil {
			log.Printf("overlay: color prompt failed: %v", err)
		} else if ok {
			o.panel.color = c
		}
		o.SetAppearance(o.panel.appearance())

	case actionApply:
		o.SetAppearance(o.panel.appearance())
		if o.saver != nil {
			if err := o.saver.Save(o.appearance); err != nil {
				log.Printf("overlay: settings not saved: %v", err)
			}
		}
		o.cue.Play()
		o.closePanel()
	}
}

// refit resizes the window when the primary monitor resolution changed.
func (o *Overlay) refit() {
	w, h, ok := primarySize()
	if !ok || (w == o.fitW && h == o.fitH) {
		return
	}
	if config.Debug() {
		log.Printf("overlay: monitor resized to %dx%d", w, h)
	}
	o.window.Fit(w, h)
	o.fitW, o.fitH = w, h
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.visible {
		drawDot(screen, o.appearance, o.width, o.height)
	}
	if o.panel != nil {
		o.panel.draw(screen)
	}
}

// drawDot paints the circle inscribed in the appearance bounding box: fill
// first, then the black outline on top.
func drawDot(screen *ebiten.Image, a crosshair.Appearance, width, height int) {
	cx, cy, r := a.BoundingBox(width, height).Circle()
	vector.DrawFilledCircle(screen, cx, cy, r, a.NRGBA(), true)
	vector.StrokeCircle(screen, cx, cy, r, float32(a.Thickness), a.OutlineNRGBA(), true)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.width, o.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func readPointer() pointerInput {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	return pointerInput{
		x:            x,
		y:            y,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		wheel:        wheel,
	}
}
