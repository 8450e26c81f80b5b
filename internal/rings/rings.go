// Package rings animates the concentric ring collection.
//
// Each ring is a two-phase oscillator: it expands over End seconds, flips,
// contracts over a freshly staggered End, flips again, and so on forever.
package rings

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/rings-and-easings/internal/config"
)

type Phase int

const (
	Expanding Phase = iota
	Contracting
)

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == Expanding {
		return Contracting
	}
	return Expanding
}

func (p Phase) String() string {
	if p == Expanding {
		return "expanding"
	}
	return "contracting"
}

type Ring struct {
	Time  float64
	End   float64
	Color color.NRGBA
	Phase Phase
}

type Animator struct {
	rings [config.RingCount]Ring

	// OnFlip is called after ring i entered phase.
	OnFlip func(i int, phase Phase)
}

// New returns an animator with every ring freshly reset.
func New(p *config.Params) *Animator {
	a := &Animator{}
	a.ResetAll(p)
	return a
}

func (a *Animator) Len() int {
	return len(a.rings)
}

func (a *Animator) Ring(i int) Ring {
	return a.rings[i]
}

// StaggeredEnd is the phase duration ring i gets on its next flip.
func (a *Animator) StaggeredEnd(i int, p *config.Params) float64 {
	return p.Time + p.TimerEasing.Ease(float64(i), p.MinDelay, p.MaxDelay, float64(len(a.rings)))
}

// ResetRing restarts ring i in the opposite phase.
func (a *Animator) ResetRing(i int, p *config.Params) {
	r := &a.rings[i]
	r.Time = 0
	r.End = a.StaggeredEnd(i, p)
	r.Phase = r.Phase.Next()
}

// ResetAll restarts every ring expanding and recomputes its color.
func (a *Animator) ResetAll(p *config.Params) {
	for i := range a.rings {
		a.ResetRing(i, p)
		a.rings[i].Phase = Expanding
		a.rings[i].Color = RingColor(i, p)
	}
}

// Advance moves every ring forward by dt seconds. A ring whose phase would
// reach End flips instead; the excess time is dropped.
func (a *Animator) Advance(dt float64, p *config.Params) {
	if p.Paused {
		return
	}
	for i := range a.rings {
		r := &a.rings[i]
		if t := r.Time + dt; t >= r.End {
			a.ResetRing(i, p)
			if a.OnFlip != nil {
				a.OnFlip(i, r.Phase)
			}
		} else {
			r.Time = t
		}
	}
}

// CurrentAngle is the half-width in degrees of ring i's drawn arc.
func (a *Animator) CurrentAngle(i int, p *config.Params) float64 {
	r := &a.rings[i]
	if r.Phase == Expanding {
		return p.ExpandEasing.Ease(r.Time, 0, config.ExpandedAngle, r.End)
	}
	return p.ContractEasing.Ease(r.Time, config.ExpandedAngle, -config.ExpandedAngle, r.End)
}

// Recolor recomputes every ring's color from the color parameters.
func (a *Animator) Recolor(p *config.Params) {
	for i := range a.rings {
		a.rings[i].Color = RingColor(i, p)
	}
}

// RingColor is the neutral gray, or a hue stepped by ring index when the
// color scheme is on.
func RingColor(i int, p *config.Params) color.NRGBA {
	if !p.Colors {
		return config.Neutral
	}
	return HSV(math.Mod(p.Hue+float64(i+1)*p.Step, 360), p.Saturation, p.Value)
}

// HSV converts hue in degrees, saturation and value in [0, 1] to an opaque
// color.
func HSV(h, s, v float64) color.NRGBA {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
