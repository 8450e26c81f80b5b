package rings

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/rings-and-easings/internal/config"
	"github.com/iburimskiy/rings-and-easings/internal/easing"
)

func testParams() config.Params {
	return config.Defaults(rand.New(rand.NewPCG(7, 11)))
}

func TestPhaseNext(t *testing.T) {
	assert.Equal(t, Contracting, Expanding.Next())
	assert.Equal(t, Expanding, Contracting.Next())
	assert.Equal(t, "expanding", Expanding.String())
	assert.Equal(t, "contracting", Contracting.String())
}

func TestResetRing(t *testing.T) {
	p := testParams()
	a := New(&p)
	require.Equal(t, config.RingCount, a.Len())

	a.Advance(0.05, &p)
	for i := 0; i < a.Len(); i++ {
		before := a.Ring(i).Phase
		a.ResetRing(i, &p)

		r := a.Ring(i)
		assert.Zero(t, r.Time)
		assert.Equal(t, before.Next(), r.Phase)
		want := p.Time + p.TimerEasing.Ease(float64(i), p.MinDelay, p.MaxDelay, float64(config.RingCount))
		assert.Equal(t, want, r.End)
	}
}

func TestResetAll(t *testing.T) {
	p := testParams()
	a := New(&p)
	a.Advance(1000, &p)
	a.Advance(0.2, &p)

	a.ResetAll(&p)
	for i := 0; i < a.Len(); i++ {
		r := a.Ring(i)
		assert.Equal(t, Expanding, r.Phase)
		assert.Zero(t, r.Time)
		assert.Equal(t, config.Neutral, r.Color)
	}
}

func TestAdvanceLargeDeltaFlipsOnce(t *testing.T) {
	p := testParams()
	a := New(&p)

	flips := make([]int, a.Len())
	a.OnFlip = func(i int, _ Phase) { flips[i]++ }

	a.Advance(1000, &p)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, Contracting, a.Ring(i).Phase)
		assert.Zero(t, a.Ring(i).Time)
		assert.Equal(t, 1, flips[i])
	}

	a.Advance(1000, &p)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, Expanding, a.Ring(i).Phase)
		assert.Equal(t, 2, flips[i])
	}
}

func TestAdvanceZeroIsIdempotent(t *testing.T) {
	p := testParams()
	a := New(&p)
	a.Advance(0.3, &p)

	before := make([]Ring, a.Len())
	for i := range before {
		before[i] = a.Ring(i)
	}
	for n := 0; n < 10; n++ {
		a.Advance(0, &p)
	}
	for i := range before {
		assert.Equal(t, before[i], a.Ring(i))
	}
}

func TestAdvanceFlipsExactlyAtEnd(t *testing.T) {
	p := testParams()
	p.TimerEasing = easing.Linear
	a := New(&p)

	rng := rand.New(rand.NewPCG(3, 5))
	elapsed := make([]float64, a.Len())
	for step := 0; step < 2000; step++ {
		dt := rng.Float64() / 20
		prev := make([]Ring, a.Len())
		for i := range prev {
			prev[i] = a.Ring(i)
		}

		a.Advance(dt, &p)

		for i := range prev {
			r := a.Ring(i)
			require.GreaterOrEqual(t, r.Time, 0.0)

			shouldFlip := prev[i].Time+dt >= prev[i].End
			if shouldFlip {
				assert.Equal(t, prev[i].Phase.Next(), r.Phase)
				assert.Zero(t, r.Time)
				elapsed[i] = 0
			} else {
				assert.Equal(t, prev[i].Phase, r.Phase)
				assert.Equal(t, prev[i].End, r.End)
				elapsed[i] += dt
				assert.InDelta(t, elapsed[i], r.Time, 1e-9)
			}
		}
	}
}

func TestAdvancePaused(t *testing.T) {
	p := testParams()
	a := New(&p)
	p.Paused = true

	a.Advance(1000, &p)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, Expanding, a.Ring(i).Phase)
		assert.Zero(t, a.Ring(i).Time)
	}
}

func TestCurrentAngleLinearMidpoint(t *testing.T) {
	p := testParams()
	p.ExpandEasing = easing.Linear
	p.ContractEasing = easing.Linear
	a := New(&p)

	r := &a.rings[3]
	r.Time = r.End / 2
	assert.Equal(t, 89.5, a.CurrentAngle(3, &p))

	r.Phase = Contracting
	assert.Equal(t, 89.5, a.CurrentAngle(3, &p))
}

func TestCurrentAngleContinuousAcrossFlip(t *testing.T) {
	p := testParams()
	p.ExpandEasing = easing.Linear
	p.ContractEasing = easing.Linear
	a := New(&p)

	const eps = 1e-6
	for i := 0; i < a.Len(); i++ {
		r := &a.rings[i]
		r.Time = r.End - eps
		before := a.CurrentAngle(i, &p)
		assert.InDelta(t, config.ExpandedAngle, before, 1e-3)

		a.ResetRing(i, &p)
		require.Equal(t, Contracting, r.Phase)
		after := a.CurrentAngle(i, &p)
		assert.Equal(t, config.ExpandedAngle, after)

		// and back again
		r.Time = r.End - eps
		assert.InDelta(t, 0.0, a.CurrentAngle(i, &p), 1e-3)
		a.ResetRing(i, &p)
		assert.Equal(t, 0.0, a.CurrentAngle(i, &p))
	}
}

func TestRecolor(t *testing.T) {
	p := testParams()
	a := New(&p)

	p.Colors = true
	p.Hue = 200
	p.Step = 15.5
	a.Recolor(&p)
	assert.Equal(t, HSV(math.Mod(200+15.5, 360), p.Saturation, p.Value), a.Ring(0).Color)
	assert.Equal(t, HSV(math.Mod(200+16*15.5, 360), p.Saturation, p.Value), a.Ring(15).Color)

	p.Colors = false
	a.Recolor(&p)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, config.Neutral, a.Ring(i).Color)
	}
}

func TestHSV(t *testing.T) {
	assert.Equal(t, uint8(255), HSV(0, 1, 1).R)
	assert.Equal(t, uint8(0), HSV(0, 1, 1).G)
	assert.Equal(t, uint8(255), HSV(120, 1, 1).G)
	assert.Equal(t, uint8(255), HSV(240, 1, 1).B)
	assert.Equal(t, uint8(255), HSV(240, 1, 1).A)

	gray := HSV(77, 0, 0.5)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)
}
