package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/hexswap/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	wave     Wave
	length   int
	position int
	rate     beep.SampleRate
}

// NewTone creates a streamer playing freq for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		wave:   wave,
		length: rate.N(d),
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay fades a streamer linearly to silence over its length.
type decay struct {
	streamer beep.Streamer
	length   int
	position int
}

// NewDecay applies a linear fade-out of length d.
func NewDecay(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, length: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.length)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume scales a streamer by a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound durations.
const (
	swapDuration  = 60 * time.Millisecond
	matchNote     = 70 * time.Millisecond
	matchDuration = 2 * matchNote
)

// Effect builds the streamer for one sound effect request.
func Effect(sfx core.SFX, vol float64, rate beep.SampleRate) beep.Streamer {
	switch sfx {
	case core.SFXSwap:
		// Short soft click
		s := NewDecay(NewTone(440, swapDuration, WaveTriangle, rate), swapDuration, rate)
		return withVolume(s, vol*0.6)
	case core.SFXMatch:
		// Rising two-note chime (E5, B5)
		n1 := NewDecay(NewTone(659.25, matchNote, WaveSquare, rate), matchNote, rate)
		n2 := NewDecay(NewTone(987.77, matchNote, WaveSquare, rate), matchNote, rate)
		return withVolume(beep.Seq(n1, n2), vol*0.4)
	default:
		return nil
	}
}
