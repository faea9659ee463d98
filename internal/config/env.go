package config

import (
	"os"
	"strconv"
)

// Debug reports whether CROSSHAIR_DEBUG enables verbose logging.
func Debug() bool {
	return envBool(EnvDebug, false)
}

// SoundEnabled reports whether the toggle cue should play. On unless
// CROSSHAIR_SOUND is set to a false value.
func SoundEnabled() bool {
	return envBool(EnvSound, true)
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
