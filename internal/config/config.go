package config

import "time"

const (
	AppName     = "Crosshair"
	WindowTitle = "Crosshair Overlay"

	// Persisted settings, relative to the working directory.
	SettingsFile = "settings.json"

	// Environment switches
	EnvDebug = "CROSSHAIR_DEBUG"
	EnvSound = "CROSSHAIR_SOUND"
)

// Appearance ranges, inclusive.
const (
	MinRadius    = 1
	MaxRadius    = 20
	MinThickness = 1
	MaxThickness = 10
	MinAlpha     = 0
	MaxAlpha     = 255

	DefaultRadius    = 3
	DefaultThickness = 2
	DefaultAlpha     = 255
	DefaultChannel   = 255
)

// Settings panel layout
const (
	PanelX      = 300
	PanelY      = 300
	PanelWidth  = 300
	PanelHeight = 260
	PanelPad    = 14

	LabelHeight  = 16
	SliderHeight = 18
	SliderGap    = 10
	KnobRadius   = 7

	ButtonWidth  = 120
	ButtonHeight = 30
	SwatchSize   = 30

	// Commands queued from the tray before the loop drains them.
	CommandBuffer = 16
	// Ticks between primary monitor size checks.
	RefitInterval = 60
)

// Tray menu labels
const (
	LabelHide     = "Hide Crosshair"
	LabelShow     = "Show Crosshair"
	LabelSettings = "Settings"
	LabelExit     = "Exit"
)

// Audible cue
const (
	CueSampleRate = 44100
	CueFrequency  = 880.0
	CueDuration   = 40 * time.Millisecond
	CueVolume     = 0.25
	CueBuffer     = 20 * time.Millisecond
)
