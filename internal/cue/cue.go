// Package cue plays a short tick so toggling the crosshair from the tray is
// audible while a fullscreen game has focus.
package cue

import (
	"log"
	"math"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

// Player plays the tick. The zero value is silent.
type Player struct {
	enabled bool

	once    sync.Once
	initErr error
	rate    beep.SampleRate
}

// New returns a player; a disabled player never touches the audio device.
func New(enabled bool) *Player {
	return &Player{
		enabled: enabled,
		rate:    beep.SampleRate(config.CueSampleRate),
	}
}

// Play starts the tick and returns immediately.
func (p *Player) Play() {
	if p == nil || !p.enabled {
		return
	}
	p.once.Do(func() {
		p.initErr = speaker.Init(p.rate, p.rate.N(config.CueBuffer))
		if p.initErr != nil {
			log.Printf("cue: audio disabled: %v", p.initErr)
		}
	})
	if p.initErr != nil {
		return
	}
	speaker.Play(tick(p.rate, config.CueFrequency, p.rate.N(config.CueDuration)))
}

// tick returns n samples of a sine at freq with a linear fade-out.
func tick(rate beep.SampleRate, freq float64, n int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			envelope := 1 - float64(pos)/float64(n)
			v := config.CueVolume * envelope * math.Sin(2*math.Pi*freq*float64(pos)/float64(rate))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return i, true
	})
}
