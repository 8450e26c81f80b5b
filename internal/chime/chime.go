// Package chime plays short tones on the speaker when rings flip.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	toneLength = 250 * time.Millisecond
	toneVolume = 0.2
	toneDecay  = 14.0

	baseFrequency = 220.0
)

// pentatonic scale steps in semitones
var scale = [...]int{0, 2, 4, 7, 9}

// Chime mixes tones into a single stream that stays on the speaker for the
// life of the process. The zero value is silent.
type Chime struct {
	mixer beep.Mixer
	ctrl  *beep.Ctrl
	sr    beep.SampleRate
	ready bool
}

// New starts the speaker. On error the returned Chime is usable but silent.
func New(sr beep.SampleRate) (*Chime, error) {
	c := &Chime{sr: sr}
	c.ctrl = &beep.Ctrl{Streamer: &c.mixer}

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return c, fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	speaker.Play(c.ctrl)
	return c, nil
}

// Ring plays the note for ring i.
func (c *Chime) Ring(i int) {
	if c == nil || !c.ready {
		return
	}
	t := beep.Take(c.sr.N(toneLength), newTone(c.sr, Frequency(i)))
	speaker.Lock()
	c.mixer.Add(t)
	speaker.Unlock()
}

func (c *Chime) SetPaused(paused bool) {
	if c == nil || !c.ready {
		return
	}
	speaker.Lock()
	c.ctrl.Paused = paused
	speaker.Unlock()
}

// Frequency maps ring i onto a pentatonic scale climbing from 220 Hz.
func Frequency(i int) float64 {
	octave, step := i/len(scale), i%len(scale)
	semitones := octave*12 + scale[step]
	return baseFrequency * math.Pow(2, float64(semitones)/12)
}

// tone is a sine with an exponential decay.
type tone struct {
	sr   float64
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: float64(sr), freq: freq}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		s := float64(t.pos) / t.sr
		v := toneVolume * math.Exp(-s*toneDecay) * math.Sin(2*math.Pi*t.freq*s)
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
