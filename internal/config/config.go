package config

import (
	"image/color"
	"math"
	"math/rand/v2"

	css "github.com/mazznoer/csscolorparser"

	"github.com/iburimskiy/rings-and-easings/internal/easing"
)

const (
	WindowWidth  = 800
	WindowHeight = 450
	WindowTitle  = "rings and easings"
	TPS          = 60

	// Ring geometry
	RingCount     = 16
	BaseRadius    = 20
	ExpandedAngle = 179.0

	// Chime
	SampleRate = 44100
)

// Center is where every ring is drawn, left of the panel.
var (
	CenterX = float64(WindowWidth-100) / 2
	CenterY = float64(WindowHeight) / 2
)

var (
	Background = mustParseColor("#f5f5f5")
	Neutral    = mustParseColor("#828282")
	TextColor  = mustParseColor("black")
)

// Panel ranges
const (
	TimeMin, TimeMax         = 0.4, 4.0
	MinDelayMin, MinDelayMax = 0.1, 1.0
	MaxDelayMin, MaxDelayMax = 0.2, 2.0
	HueMin, HueMax           = 0.0, 360.0
	StepMin, StepMax         = 0.0, 137.508

	AngleMin, AngleMax       = -360, 360
	PaddingMin, PaddingMax   = -180, 180
	SizeMin, SizeMax         = 1, 90
	SpacingMin, SpacingMax   = -40, 40
	SegmentsMin, SegmentsMax = 0, 40
)

// Params is the live parameter set shared by the animator, the renderer and
// the panel.
type Params struct {
	// Geometry
	Angle    int
	Padding  int
	Size     int
	Spacing  int
	Segments int

	VisibleStart int
	VisibleEnd   int

	// Timing
	Time     float64
	MinDelay float64
	MaxDelay float64

	// Colors
	Colors     bool
	Hue        float64
	Saturation float64
	Value      float64
	Step       float64

	DrawRings bool
	DrawLines bool

	TimerEasing    easing.Curve
	ExpandEasing   easing.Curve
	ContractEasing easing.Curve

	Paused bool
	Sound  bool
}

// Defaults returns the startup parameters. Hue and Step are drawn from rng.
func Defaults(rng *rand.Rand) Params {
	return Params{
		Angle:    90,
		Padding:  2,
		Size:     8,
		Spacing:  12,
		Segments: 0,

		VisibleStart: 2,
		VisibleEnd:   8,

		Time:     1.6,
		MinDelay: 0.1,
		MaxDelay: 0.9,

		Colors:     false,
		Hue:        float64(rng.IntN(361)),
		Saturation: 0.20,
		Value:      0.95,
		Step:       float64(10 + rng.IntN(128)),

		DrawRings: true,
		DrawLines: true,

		TimerEasing:    easing.BounceIn,
		ExpandEasing:   easing.SineIn,
		ContractEasing: easing.CircIn,
	}
}

// Visible reports whether ring i is inside the render range.
func (p *Params) Visible(i int) bool {
	return i >= p.VisibleStart && i <= p.VisibleEnd
}

func mustParseColor(s string) color.NRGBA {
	c, err := css.Parse(s)
	if err != nil {
		panic(err)
	}
	return color.NRGBA{
		R: uint8(math.Round(255 * c.R)),
		G: uint8(math.Round(255 * c.G)),
		B: uint8(math.Round(255 * c.B)),
		A: uint8(math.Round(255 * c.A)),
	}
}
