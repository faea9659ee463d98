package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/cue"
	"github.com/iburimskiy/crosshair-overlay/internal/overlay"
	"github.com/iburimskiy/crosshair-overlay/internal/resource"
	"github.com/iburimskiy/crosshair-overlay/internal/settings"
	"github.com/iburimskiy/crosshair-overlay/internal/tray"
)

// app owns the single overlay and tray of the process.
type app struct {
	overlay *overlay.Overlay
	tray    *tray.Controller
	icon    []byte
}

func newApp(icon []byte) *app {
	store := settings.NewStore(config.SettingsFile)
	appearance := store.Load()
	if config.Debug() {
		log.Printf("loaded %v from %s", appearance, store.Path())
	}

	player := cue.New(config.SoundEnabled())
	ov := overlay.New(appearance, overlay.Options{
		Saver: store,
		Cue:   player,
		Icon:  decodeIcon(icon),
	})

	return &app{
		overlay: ov,
		tray:    tray.New(ov, player),
		icon:    icon,
	}
}

func (a *app) run() int {
	end := a.tray.Start(a.icon)
	defer end()

	if err := a.overlay.Run(); err != nil {
		log.Printf("%v", err)
		return 1
	}
	return 0
}

// decodeIcon returns nil for formats the image package cannot read (ICO).
func decodeIcon(data []byte) image.Image {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}

func run() int {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("crosshair: ")

	if !tray.Available() {
		log.Println("System tray is not available.")
		return 1
	}

	icon, err := resource.Load(resource.IconName)
	if err != nil {
		log.Printf("%v (%s mode)", err, resource.Mode())
		_ = zenity.Error(fmt.Sprintf("Icon file not found: %v", err), zenity.Title("Error"))
		return 1
	}

	return newApp(icon).run()
}

func main() {
	os.Exit(run())
}
