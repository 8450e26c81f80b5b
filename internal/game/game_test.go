package game

import (
	"image/color"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/rings-and-easings/internal/config"
	"github.com/iburimskiy/rings-and-easings/internal/easing"
	"github.com/iburimskiy/rings-and-easings/internal/gui"
	"github.com/iburimskiy/rings-and-easings/internal/rings"
)

func newTestGame() *Game {
	quiet := log.New(io.Discard, "", 0)
	return New(rand.New(rand.NewPCG(1, 2)), nil, quiet, quiet)
}

// clickAt runs the panel for a press and a release at x, y.
func clickAt(g *Game, x, y float64) {
	g.ui.Begin(gui.Input{CursorX: x, CursorY: y, LeftDown: true, LeftPressed: true})
	g.updatePanel()
	g.ui.Begin(gui.Input{CursorX: x, CursorY: y, LeftReleased: true})
	g.updatePanel()
}

func TestRingArcs(t *testing.T) {
	p := config.Params{Angle: 90, Padding: 2}

	fill, outline := ringArcs(30, &p)
	assert.Equal(t, arc{Start: 62, End: 118}, fill)
	assert.Equal(t, arc{Start: 122, End: 418}, outline)

	// fill and outline leave 2*padding gaps on both sides
	assert.Equal(t, 4.0, outline.Start-fill.End)
	assert.Equal(t, 4.0, fill.Start+360-outline.End)
}

func TestRingRadius(t *testing.T) {
	p := config.Params{Spacing: 12}
	assert.Equal(t, 20.0, ringRadius(0, &p))
	assert.Equal(t, 200.0, ringRadius(15, &p))

	p.Spacing = -40
	assert.Equal(t, -20.0, ringRadius(1, &p))
}

func TestNewStartsExpanding(t *testing.T) {
	g := newTestGame()
	require.Equal(t, config.RingCount, g.anim.Len())
	for i := 0; i < g.anim.Len(); i++ {
		assert.Equal(t, rings.Expanding, g.anim.Ring(i).Phase)
	}
}

func TestTogglePause(t *testing.T) {
	g := newTestGame()
	g.togglePause()
	assert.True(t, g.params.Paused)
	assert.Contains(t, g.status(), "PAUSED")

	g.anim.Advance(1000, &g.params)
	assert.Equal(t, rings.Expanding, g.anim.Ring(0).Phase)

	g.togglePause()
	assert.False(t, g.params.Paused)
	assert.NotContains(t, g.status(), "PAUSED")
}

func TestPanelResetButton(t *testing.T) {
	g := newTestGame()
	g.anim.Advance(1000, &g.params)
	require.Equal(t, rings.Contracting, g.anim.Ring(5).Phase)

	clickAt(g, 50, 395)
	for i := 0; i < g.anim.Len(); i++ {
		assert.Equal(t, rings.Expanding, g.anim.Ring(i).Phase)
		assert.Zero(t, g.anim.Ring(i).Time)
	}
}

func TestPanelColorsCheckBoxRecolors(t *testing.T) {
	g := newTestGame()
	require.False(t, g.params.Colors)
	assert.Equal(t, config.Neutral, g.anim.Ring(0).Color)

	clickAt(g, 710, 420)
	require.True(t, g.params.Colors)
	want := rings.HSV(math.Mod(g.params.Hue+g.params.Step, 360), g.params.Saturation, g.params.Value)
	assert.Equal(t, want, g.anim.Ring(0).Color)

	clickAt(g, 710, 420)
	assert.False(t, g.params.Colors)
	assert.Equal(t, config.Neutral, g.anim.Ring(0).Color)
}

func TestPanelComboBoxSelectsCurve(t *testing.T) {
	g := newTestGame()
	require.Equal(t, easing.SineIn, g.params.ExpandEasing)

	clickAt(g, 700, 55)
	assert.Equal(t, easing.SineOut, g.params.ExpandEasing)
	assert.Equal(t, easing.BounceIn, g.params.TimerEasing)
}

func TestPanelClampsVisibleRange(t *testing.T) {
	g := newTestGame()
	g.params.VisibleEnd = config.RingCount - 1

	clickAt(g, 785, 330)
	assert.Equal(t, config.RingCount-1, g.params.VisibleEnd)
}

func TestOnFlipNeedsSoundAndVisibility(t *testing.T) {
	g := newTestGame()
	// nil chime, so this only has to not panic
	g.params.Sound = true
	assert.NotPanics(t, func() {
		g.onFlip(3, rings.Expanding)
		g.onFlip(3, rings.Contracting)
		g.onFlip(15, rings.Expanding)
	})
}

func TestColorsChanged(t *testing.T) {
	a := config.Params{Hue: 10, Step: 5}
	b := a
	assert.False(t, colorsChanged(&a, &b))

	b.Saturation = 0.5
	assert.True(t, colorsChanged(&a, &b))

	b = a
	b.Angle = 45
	assert.False(t, colorsChanged(&a, &b))
}

func TestToHSV(t *testing.T) {
	h, s, v, ok := toHSV(color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	require.True(t, ok)
	assert.InDelta(t, 120, h, 1e-9)
	assert.InDelta(t, 1, s, 1e-9)
	assert.InDelta(t, 1, v, 1e-9)

	_, _, _, ok = toHSV(color.NRGBA{})
	assert.False(t, ok)
}
