package tray

import (
	"reflect"
	"testing"
	"time"
)

type fakeOverlay struct {
	calls []string
}

func (o *fakeOverlay) Show()         { o.calls = append(o.calls, "show") }
func (o *fakeOverlay) Hide()         { o.calls = append(o.calls, "hide") }
func (o *fakeOverlay) OpenSettings() { o.calls = append(o.calls, "settings") }
func (o *fakeOverlay) Quit()         { o.calls = append(o.calls, "quit") }

type fakeMenu struct {
	labels []string
}

func (m *fakeMenu) SetToggleLabel(label string) { m.labels = append(m.labels, label) }

type fakeCue struct{ plays int }

func (c *fakeCue) Play() { c.plays++ }

func newTestController() (*Controller, *fakeOverlay, *fakeMenu, *fakeCue) {
	overlay := &fakeOverlay{}
	menu := &fakeMenu{}
	cue := &fakeCue{}
	c := New(overlay, cue)
	c.menu = menu
	return c, overlay, menu, cue
}

func TestNew_VisibleByDefault(t *testing.T) {
	c, _, _, _ := newTestController()
	if !c.OverlayVisible() {
		t.Error("Overlay should start visible")
	}
}

func TestToggle(t *testing.T) {
	c, overlay, menu, cue := newTestController()

	c.Toggle()
	if c.OverlayVisible() {
		t.Error("First toggle should hide the overlay")
	}
	c.Toggle()
	if !c.OverlayVisible() {
		t.Error("Second toggle should show the overlay")
	}

	if !reflect.DeepEqual(overlay.calls, []string{"hide", "show"}) {
		t.Errorf("Unexpected overlay calls: %v", overlay.calls)
	}
	if !reflect.DeepEqual(menu.labels, []string{"Show Crosshair", "Hide Crosshair"}) {
		t.Errorf("Unexpected labels: %v", menu.labels)
	}
	if cue.plays != 2 {
		t.Errorf("Expected 2 cues, got %d", cue.plays)
	}
}

func TestToggle_WithoutMenuOrCue(t *testing.T) {
	overlay := &fakeOverlay{}
	c := New(overlay, nil)
	c.Toggle()
	if c.OverlayVisible() {
		t.Error("Toggle should work before the menu exists")
	}
}

func TestOpenSettings(t *testing.T) {
	c, overlay, _, _ := newTestController()
	c.Toggle()
	c.OpenSettings()

	if !reflect.DeepEqual(overlay.calls, []string{"hide", "settings"}) {
		t.Errorf("Unexpected overlay calls: %v", overlay.calls)
	}
	if c.OverlayVisible() {
		t.Error("Opening settings should not change visibility")
	}
}

func TestExit(t *testing.T) {
	c, overlay, _, _ := newTestController()
	c.Exit()

	if !reflect.DeepEqual(overlay.calls, []string{"hide", "quit"}) {
		t.Errorf("Exit should hide then quit, got %v", overlay.calls)
	}
}

func TestToggleLabel(t *testing.T) {
	if toggleLabel(true) != "Hide Crosshair" {
		t.Error("Visible overlay should offer Hide")
	}
	if toggleLabel(false) != "Show Crosshair" {
		t.Error("Hidden overlay should offer Show")
	}
}

func TestLoop_SharesStateBetweenMenuAndTap(t *testing.T) {
	c, overlay, _, _ := newTestController()

	toggle := make(chan struct{})
	settings := make(chan struct{})
	exit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		c.loop(toggle, settings, exit)
		close(done)
	}()

	toggle <- struct{}{}
	c.tap()
	// wait for the tap to be consumed before sending more events
	deadline := time.Now().Add(2 * time.Second)
	for len(c.tapped) > 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	settings <- struct{}{}
	exit <- struct{}{}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not return after exit")
	}

	want := []string{"hide", "show", "settings", "hide", "quit"}
	if !reflect.DeepEqual(overlay.calls, want) {
		t.Errorf("overlay calls = %v, expected %v", overlay.calls, want)
	}
	if !c.OverlayVisible() {
		t.Error("Menu toggle and tap should share one visibility flag")
	}
}

func TestTap_DoesNotBlock(t *testing.T) {
	c, _, _, _ := newTestController()
	c.tap()
	c.tap()
	if len(c.tapped) != 1 {
		t.Errorf("Expected one pending tap, got %d", len(c.tapped))
	}
}
