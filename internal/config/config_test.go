package config

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/rings-and-easings/internal/easing"
)

func TestDefaults(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		p := Defaults(rand.New(rand.NewPCG(seed, seed+1)))

		assert.GreaterOrEqual(t, p.Hue, 0.0)
		assert.LessOrEqual(t, p.Hue, 360.0)
		assert.GreaterOrEqual(t, p.Step, 10.0)
		assert.LessOrEqual(t, p.Step, 137.0)
	}

	p := Defaults(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, 90, p.Angle)
	assert.Equal(t, 2, p.Padding)
	assert.Equal(t, 8, p.Size)
	assert.Equal(t, 12, p.Spacing)
	assert.Equal(t, 1.6, p.Time)
	assert.Equal(t, easing.BounceIn, p.TimerEasing)
	assert.Equal(t, easing.SineIn, p.ExpandEasing)
	assert.Equal(t, easing.CircIn, p.ContractEasing)
	assert.False(t, p.Colors)
	assert.False(t, p.Paused)
	assert.True(t, p.DrawRings)
	assert.True(t, p.DrawLines)
}

func TestVisible(t *testing.T) {
	p := Params{VisibleStart: 2, VisibleEnd: 8}
	assert.False(t, p.Visible(1))
	assert.True(t, p.Visible(2))
	assert.True(t, p.Visible(8))
	assert.False(t, p.Visible(9))

	p.VisibleStart, p.VisibleEnd = 9, 3
	for i := 0; i < RingCount; i++ {
		assert.False(t, p.Visible(i))
	}
}

func TestNamedColors(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}, Background)
	assert.Equal(t, color.NRGBA{R: 130, G: 130, B: 130, A: 255}, Neutral)
	assert.Equal(t, color.NRGBA{A: 255}, TextColor)
}
