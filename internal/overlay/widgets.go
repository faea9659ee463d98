package overlay

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

// pointerInput is one frame of mouse state.
type pointerInput struct {
	x, y         int
	justPressed  bool
	pressed      bool
	justReleased bool
	wheel        float64
}

// slider is a horizontal integer range control.
type slider struct {
	label    string
	min, max int
	value    int

	// track geometry; height is config.SliderHeight
	x, y, w int

	hovered  bool
	dragging bool
}

func newSlider(label string, min, max, value, x, y, w int) *slider {
	s := &slider{label: label, min: min, max: max, x: x, y: y, w: w}
	s.value = s.clampValue(value)
	return s
}

func (s *slider) clampValue(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *slider) contains(x, y int) bool {
	return x >= s.x-config.KnobRadius && x <= s.x+s.w+config.KnobRadius &&
		y >= s.y && y <= s.y+config.SliderHeight
}

// valueAt maps a cursor x coordinate onto the slider range.
func (s *slider) valueAt(x int) int {
	frac := clamp01(float64(x-s.x) / float64(s.w))
	return s.min + int(math.Round(frac*float64(s.max-s.min)))
}

// knobX is the horizontal position of the knob for the current value.
func (s *slider) knobX() float64 {
	if s.max == s.min {
		return float64(s.x)
	}
	return float64(s.x) + float64(s.w)*float64(s.value-s.min)/float64(s.max-s.min)
}

func (s *slider) set(v int) bool {
	v = s.clampValue(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// update applies one frame of input and reports whether the value changed.
func (s *slider) update(in pointerInput) bool {
	s.hovered = s.contains(in.x, in.y)

	if s.hovered && in.justPressed {
		s.dragging = true
	}

	changed := false
	if s.dragging && in.pressed {
		changed = s.set(s.valueAt(in.x))
	}
	if in.justReleased || !in.pressed {
		s.dragging = false
	}

	if s.hovered && in.wheel != 0 {
		step := 1
		if in.wheel < 0 {
			step = -1
		}
		if s.set(s.value + step) {
			changed = true
		}
	}
	return changed
}

func (s *slider) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", s.label, s.value), s.x-config.KnobRadius, s.y-config.LabelHeight)

	cy := float32(s.y) + config.SliderHeight/2
	vector.DrawFilledRect(screen, float32(s.x), cy-2, float32(s.w), 4, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	kx := float32(s.knobX())
	vector.DrawFilledRect(screen, float32(s.x), cy-2, kx-float32(s.x), 4, color.RGBA{R: 100, G: 120, B: 160, A: 255}, false)

	knob := color.RGBA{R: 220, G: 225, B: 235, A: 255}
	if s.hovered || s.dragging {
		knob = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	vector.DrawFilledCircle(screen, kx, cy, config.KnobRadius, knob, true)
	vector.StrokeCircle(screen, kx, cy, config.KnobRadius, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, true)
}

// button fires on release inside its bounds after a press inside them.
type button struct {
	label      string
	x, y, w, h int

	hovered bool
	pressed bool
}

func newButton(label string, x, y int) *button {
	return &button{label: label, x: x, y: y, w: config.ButtonWidth, h: config.ButtonHeight}
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

func (b *button) update(in pointerInput) bool {
	b.hovered = b.contains(in.x, in.y)

	if b.hovered && in.justPressed {
		b.pressed = true
	}

	clicked := false
	if in.justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	// DebugPrint glyphs are about 6px wide and 16px tall
	textX := b.x + (b.w-len(b.label)*6)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
