package config

import "testing"

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		set      bool
		fallback bool
		expected bool
	}{
		{"", false, true, true},
		{"", false, false, false},
		{"", true, true, true},
		{"1", true, false, true},
		{"true", true, false, true},
		{"0", true, true, false},
		{"false", true, true, false},
		{"maybe", true, true, true},
		{"maybe", true, false, false},
	}

	for _, test := range tests {
		if test.set {
			t.Setenv("CROSSHAIR_TEST_BOOL", test.value)
		}
		if got := envBool("CROSSHAIR_TEST_BOOL", test.fallback); got != test.expected {
			t.Errorf("envBool(%q, %v) = %v, expected %v", test.value, test.fallback, got, test.expected)
		}
	}
}

func TestSoundEnabled(t *testing.T) {
	t.Setenv(EnvSound, "0")
	if SoundEnabled() {
		t.Error("CROSSHAIR_SOUND=0 should disable the cue")
	}
	t.Setenv(EnvSound, "")
	if !SoundEnabled() {
		t.Error("cue should be on by default")
	}
}
