// Package crosshair holds the crosshair appearance shared by the overlay,
// the settings panel and the settings store.
package crosshair

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

// RGB is a fill color without alpha.
type RGB struct {
	R, G, B uint8
}

// White is the default fill.
var White = RGB{R: config.DefaultChannel, G: config.DefaultChannel, B: config.DefaultChannel}

// RGBFromColor drops the alpha of c and un-premultiplies its channels.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Color returns c as an opaque color.Color.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Appearance is everything needed to paint the dot.
type Appearance struct {
	Radius    int
	Thickness int
	Color     RGB
	Alpha     int
}

// Default returns the appearance used when nothing valid is persisted.
func Default() Appearance {
	return Appearance{
		Radius:    config.DefaultRadius,
		Thickness: config.DefaultThickness,
		Color:     White,
		Alpha:     config.DefaultAlpha,
	}
}

// Valid reports whether every field is within its range.
func (a Appearance) Valid() bool {
	return inRange(a.Radius, config.MinRadius, config.MaxRadius) &&
		inRange(a.Thickness, config.MinThickness, config.MaxThickness) &&
		inRange(a.Alpha, config.MinAlpha, config.MaxAlpha)
}

// Clamp returns a copy of a with every field forced into range.
func (a Appearance) Clamp() Appearance {
	a.Radius = clamp(a.Radius, config.MinRadius, config.MaxRadius)
	a.Thickness = clamp(a.Thickness, config.MinThickness, config.MaxThickness)
	a.Alpha = clamp(a.Alpha, config.MinAlpha, config.MaxAlpha)
	return a
}

// NRGBA is the fill color with the appearance alpha applied.
func (a Appearance) NRGBA() color.NRGBA {
	return color.NRGBA{R: a.Color.R, G: a.Color.G, B: a.Color.B, A: uint8(a.Alpha)}
}

// OutlineNRGBA is black with the appearance alpha applied.
func (a Appearance) OutlineNRGBA() color.NRGBA {
	return color.NRGBA{A: uint8(a.Alpha)}
}

func (a Appearance) String() string {
	return fmt.Sprintf("size=%d thickness=%d color=%s alpha=%d", a.Radius, a.Thickness, a.Color, a.Alpha)
}

// Rect is an integer rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H int
}

// BoundingBox returns the square handed to the circle primitive for a
// window of the given size. The radius is used as half of the box side, so
// the size setting maps to this box and nothing else.
func (a Appearance) BoundingBox(width, height int) Rect {
	cx := width / 2
	cy := height / 2
	r := a.Radius
	return Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Circle returns the center and radius of the circle inscribed in r.
func (r Rect) Circle() (cx, cy, radius float32) {
	return float32(r.X) + float32(r.W)/2, float32(r.Y) + float32(r.H)/2, float32(r.W) / 2
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
