// Package sound synthesises the short click played on every control.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is an endless sine wave at a fixed frequency and volume.
type tone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	pos        int
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	step := 2 * math.Pi * t.freq / float64(t.sampleRate)
	for i := range samples {
		v := t.volume * math.Sin(step*float64(t.pos))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Click returns a finite streamer of d worth of sine samples.
func Click(sr beep.SampleRate, freq, volume float64, d time.Duration) beep.Streamer {
	return beep.Take(sr.N(d), &tone{sampleRate: sr, freq: freq, volume: volume})
}
