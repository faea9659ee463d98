package overlay

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// ColorPicker prompts for a color seeded with initial. ok is false when the
// user dismissed the prompt.
type ColorPicker func(initial crosshair.RGB) (c crosshair.RGB, ok bool, err error)

// PickColor shows the native color dialog. It blocks until the user answers.
func PickColor(initial crosshair.RGB) (crosshair.RGB, bool, error) {
	c, err := zenity.SelectColor(
		zenity.Title("Choose Color"),
		zenity.Color(initial.Color()),
		zenity.ShowPalette(),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return initial, false, nil
		}
		return initial, false, err
	}
	if c == nil {
		return initial, false, nil
	}
	return crosshair.RGBFromColor(c), true, nil
}
