// Package easing implements the Robert Penner easing curves.
//
// Every curve maps (t, b, c, d) to a value: t is the elapsed time, b the
// start value, c the change in value and d the total duration. The result
// moves from b at t == 0 to b+c at t == d. Values of t outside [0, d] are
// extrapolated by the same formulas, nothing is clamped.
package easing

import (
	"errors"
	"fmt"
)

type Curve int

const (
	Linear Curve = iota
	SineIn
	SineOut
	SineInOut
	CircIn
	CircOut
	CircInOut
	CubicIn
	CubicOut
	CubicInOut
	QuadIn
	QuadOut
	QuadInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut
	ElasticIn
	ElasticOut
	ElasticInOut

	Count
)

var ErrUnknownCurve = errors.New("unknown easing curve")

var curveNames = [Count]string{
	"EaseLinear",
	"EaseSineIn", "EaseSineOut", "EaseSineInOut",
	"EaseCircIn", "EaseCircOut", "EaseCircInOut",
	"EaseCubicIn", "EaseCubicOut", "EaseCubicInOut",
	"EaseQuadIn", "EaseQuadOut", "EaseQuadInOut",
	"EaseBackIn", "EaseBackOut", "EaseBackInOut",
	"EaseBounceIn", "EaseBounceOut", "EaseBounceInOut",
	"EaseElasticIn", "EaseElasticOut", "EaseElasticInOut",
}

func (c Curve) Valid() bool {
	return c >= 0 && c < Count
}

func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// Names returns the display names in table order.
func Names() []string {
	names := make([]string, Count)
	copy(names, curveNames[:])
	return names
}

// Parse looks a curve up by its display name.
func Parse(name string) (Curve, error) {
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Ease evaluates the curve. Invalid curves evaluate as Linear.
func (c Curve) Ease(t, b, ch, d float64) float64 {
	switch c {
	case SineIn:
		return sineIn(t, b, ch, d)
	case SineOut:
		return sineOut(t, b, ch, d)
	case SineInOut:
		return sineInOut(t, b, ch, d)
	case CircIn:
		return circIn(t, b, ch, d)
	case CircOut:
		return circOut(t, b, ch, d)
	case CircInOut:
		return circInOut(t, b, ch, d)
	case CubicIn:
		return cubicIn(t, b, ch, d)
	case CubicOut:
		return cubicOut(t, b, ch, d)
	case CubicInOut:
		return cubicInOut(t, b, ch, d)
	case QuadIn:
		return quadIn(t, b, ch, d)
	case QuadOut:
		return quadOut(t, b, ch, d)
	case QuadInOut:
		return quadInOut(t, b, ch, d)
	case BackIn:
		return backIn(t, b, ch, d)
	case BackOut:
		return backOut(t, b, ch, d)
	case BackInOut:
		return backInOut(t, b, ch, d)
	case BounceIn:
		return bounceIn(t, b, ch, d)
	case BounceOut:
		return bounceOut(t, b, ch, d)
	case BounceInOut:
		return bounceInOut(t, b, ch, d)
	case ElasticIn:
		return elasticIn(t, b, ch, d)
	case ElasticOut:
		return elasticOut(t, b, ch, d)
	case ElasticInOut:
		return elasticInOut(t, b, ch, d)
	default:
		return linear(t, b, ch, d)
	}
}
