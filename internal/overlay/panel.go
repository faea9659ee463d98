package overlay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

type panelAction int

const (
	actionNone panelAction = iota
	actionChanged
	actionPickColor
	actionApply
)

// settingsPanel edits a working copy of the appearance. The overlay pushes
// the copy back into itself after every change.
type settingsPanel struct {
	x, y int

	size      *slider
	thickness *slider
	alpha     *slider

	color       crosshair.RGB
	colorButton *button
	applyButton *button
}

func newSettingsPanel(a crosshair.Appearance, x, y int) *settingsPanel {
	p := &settingsPanel{x: x, y: y, color: a.Color}

	trackX := x + config.PanelPad + config.KnobRadius
	trackW := config.PanelWidth - 2*config.PanelPad - 2*config.KnobRadius
	row := config.LabelHeight + config.SliderHeight + config.SliderGap
	top := y + config.PanelPad + config.LabelHeight + 6

	p.size = newSlider("Dot Size:", config.MinRadius, config.MaxRadius, a.Radius,
		trackX, top+config.LabelHeight, trackW)
	p.thickness = newSlider("Edge Thickness:", config.MinThickness, config.MaxThickness, a.Thickness,
		trackX, top+row+config.LabelHeight, trackW)
	p.alpha = newSlider("Transparency:", config.MinAlpha, config.MaxAlpha, a.Alpha,
		trackX, top+2*row+config.LabelHeight, trackW)

	buttonsY := top + 3*row
	p.colorButton = newButton("Choose Color", x+config.PanelPad, buttonsY)
	p.applyButton = newButton("Apply", x+config.PanelPad, buttonsY+config.ButtonHeight+10)
	return p
}

// appearance reads every control plus the held color.
func (p *settingsPanel) appearance() crosshair.Appearance {
	return crosshair.Appearance{
		Radius:    p.size.value,
		Thickness: p.thickness.value,
		Color:     p.color,
		Alpha:     p.alpha.value,
	}
}

func (p *settingsPanel) sliders() []*slider {
	return []*slider{p.size, p.thickness, p.alpha}
}

func (p *settingsPanel) update(in pointerInput) panelAction {
	changed := false
	for _, s := range p.sliders() {
		if s.update(in) {
			changed = true
		}
	}

	if p.colorButton.update(in) {
		return actionPickColor
	}
	if p.applyButton.update(in) {
		return actionApply
	}
	if changed {
		return actionChanged
	}
	return actionNone
}

// resetPointer drops press state after a modal prompt swallowed the release.
func (p *settingsPanel) resetPointer() {
	for _, s := range p.sliders() {
		s.dragging = false
	}
	p.colorButton.pressed = false
	p.applyButton.pressed = false
}

func (p *settingsPanel) draw(screen *ebiten.Image) {
	x, y := float32(p.x), float32(p.y)
	vector.DrawFilledRect(screen, x, y, config.PanelWidth, config.PanelHeight, color.RGBA{R: 20, G: 25, B: 35, A: 235}, false)
	vector.StrokeRect(screen, x, y, config.PanelWidth, config.PanelHeight, 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "Crosshair Settings", p.x+config.PanelPad, p.y+config.PanelPad)

	for _, s := range p.sliders() {
		s.draw(screen)
	}

	p.colorButton.draw(screen)
	sx := float32(p.colorButton.x + p.colorButton.w + 10)
	sy := float32(p.colorButton.y)
	vector.DrawFilledRect(screen, sx, sy, config.SwatchSize, config.SwatchSize, p.color.Color(), false)
	vector.StrokeRect(screen, sx, sy, config.SwatchSize, config.SwatchSize, 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, p.color.String(), int(sx)+config.SwatchSize+8, int(sy)+7)

	p.applyButton.draw(screen)
}
