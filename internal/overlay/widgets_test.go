package overlay

import "testing"

func TestSlider_ValueAt(t *testing.T) {
	s := newSlider("Dot Size:", 1, 20, 3, 100, 50, 190)

	tests := []struct {
		x        int
		expected int
	}{
		{0, 1},
		{100, 1},
		{195, 11},
		{290, 20},
		{1000, 20},
	}

	for _, test := range tests {
		if got := s.valueAt(test.x); got != test.expected {
			t.Errorf("valueAt(%d) = %d, expected %d", test.x, got, test.expected)
		}
	}
}

func TestSlider_ClampsInitialValue(t *testing.T) {
	if s := newSlider("x", 1, 10, 42, 0, 0, 100); s.value != 10 {
		t.Errorf("Expected value clamped to 10, got %d", s.value)
	}
	if s := newSlider("x", 1, 10, -4, 0, 0, 100); s.value != 1 {
		t.Errorf("Expected value clamped to 1, got %d", s.value)
	}
}

func TestSlider_KnobX(t *testing.T) {
	s := newSlider("x", 0, 255, 0, 10, 0, 255)
	if s.knobX() != 10 {
		t.Errorf("knobX at min = %v", s.knobX())
	}
	s.set(255)
	if s.knobX() != 265 {
		t.Errorf("knobX at max = %v", s.knobX())
	}
}

func TestSlider_PressOutsideDoesNothing(t *testing.T) {
	s := newSlider("x", 1, 20, 5, 100, 50, 190)

	if s.update(pointerInput{x: 150, y: 10, justPressed: true, pressed: true}) {
		t.Error("Press outside the track should not change the value")
	}
	if s.update(pointerInput{x: 150, y: 55, pressed: true}) {
		t.Error("Moving onto the track while held should not start a drag")
	}
}

func TestButton_Click(t *testing.T) {
	tests := []struct {
		name     string
		press    [2]int
		release  [2]int
		expected bool
	}{
		{"inside", [2]int{20, 20}, [2]int{30, 25}, true},
		{"released outside", [2]int{20, 20}, [2]int{500, 500}, false},
		{"pressed outside", [2]int{500, 500}, [2]int{20, 20}, false},
	}

	for _, test := range tests {
		b := newButton("Apply", 10, 10)
		b.update(pointerInput{x: test.press[0], y: test.press[1], justPressed: true, pressed: true})
		got := b.update(pointerInput{x: test.release[0], y: test.release[1], justReleased: true})
		if got != test.expected {
			t.Errorf("%s: clicked = %v, expected %v", test.name, got, test.expected)
		}
		if b.pressed {
			t.Errorf("%s: button should not stay pressed", test.name)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, expected float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1},
	}
	for _, test := range tests {
		if got := clamp01(test.in); got != test.expected {
			t.Errorf("clamp01(%v) = %v, expected %v", test.in, got, test.expected)
		}
	}
}
