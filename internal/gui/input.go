package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame of pointer and keyboard state as the widgets see it.
type Input struct {
	CursorX, CursorY float64

	LeftDown     bool
	LeftPressed  bool
	LeftReleased bool
	RightPressed bool

	WheelY float64

	Chars     []rune
	Backspace bool
}

// PollInput fills in from ebiten's current state. in.Chars is reused.
func PollInput(in *Input) {
	x, y := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(x), float64(y)

	in.LeftDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.LeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.LeftReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	in.RightPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	_, in.WheelY = ebiten.Wheel()

	in.Chars = ebiten.AppendInputChars(in.Chars[:0])
	in.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

type Rect struct {
	X, Y, W, H float64
}

func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
