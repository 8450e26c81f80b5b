// Package gui is a small immediate-mode widget set for ebiten.
//
// Widgets are called from Update with the current value and return the new
// one. Each call records how to draw itself; Draw replays the recording.
package gui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

const (
	borderWidth = 1
	textPadding = 4

	sliderThumbWidth = 10
	spinButtonWidth  = 20
	comboSelectWidth = 30
	comboSelectGap   = 2
)

type widgetState int

const (
	stateNormal widgetState = iota
	stateFocused
	statePressed
)

type style struct {
	Border color.NRGBA
	Base   color.NRGBA
	Text   color.NRGBA
}

var styles = [...]style{
	stateNormal:  {Border: hex("#838383"), Base: hex("#c9c9c9"), Text: hex("#686868")},
	stateFocused: {Border: hex("#5bb2d9"), Base: hex("#c9effe"), Text: hex("#6c9bbc")},
	statePressed: {Border: hex("#0492c7"), Base: hex("#97e8ff"), Text: hex("#368baf")},
}

var labelColor = hex("#686868")

type Context struct {
	in  Input
	ops []func(dst *ebiten.Image)

	// widget holding the left button since it was pressed on it
	active    Rect
	hasActive bool

	face text.Face
}

func NewContext() *Context {
	return &Context{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Begin starts a frame. Widgets called after it see in.
func (c *Context) Begin(in Input) {
	c.in = in
	c.ops = c.ops[:0]
	if !in.LeftDown && !in.LeftReleased && !in.LeftPressed {
		c.hasActive = false
	}
}

// Draw replays the widgets recorded since Begin.
func (c *Context) Draw(dst *ebiten.Image) {
	for _, op := range c.ops {
		op(dst)
	}
}

func (c *Context) record(op func(dst *ebiten.Image)) {
	c.ops = append(c.ops, op)
}

func (c *Context) hovered(r Rect) bool {
	return r.Contains(c.in.CursorX, c.in.CursorY)
}

func (c *Context) isActive(r Rect) bool {
	return c.hasActive && c.active == r
}

// press marks r active when the left button goes down over it.
func (c *Context) press(r Rect) {
	if c.in.LeftPressed && c.hovered(r) {
		c.active = r
		c.hasActive = true
	}
}

// clicked is true on the frame the left button is released over r after
// being pressed over r.
func (c *Context) clicked(r Rect) bool {
	c.press(r)
	return c.in.LeftReleased && c.hovered(r) && c.isActive(r)
}

func (c *Context) state(r Rect) widgetState {
	switch {
	case c.isActive(r) && c.in.LeftDown:
		return statePressed
	case c.hovered(r):
		return stateFocused
	default:
		return stateNormal
	}
}

// Label draws s right aligned inside r.
func (c *Context) Label(r Rect, s string) {
	c.record(func(dst *ebiten.Image) {
		c.drawText(dst, s, r.X+r.W, r.Y+r.H/2, text.AlignEnd, labelColor)
	})
}

// Text records s with its top left corner at x, y.
func (c *Context) Text(x, y float64, s string, clr color.Color) {
	c.record(func(dst *ebiten.Image) {
		c.DrawText(dst, s, x, y, clr)
	})
}

// DrawText draws s right away, outside the recording.
func (c *Context) DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, c.face, op)
}

func (c *Context) Button(r Rect, s string) bool {
	clicked := c.clicked(r)
	st := styles[c.state(r)]
	c.record(func(dst *ebiten.Image) {
		drawBox(dst, r, st)
		c.drawText(dst, s, r.X+r.W/2, r.Y+r.H/2, text.AlignCenter, st.Text)
	})
	return clicked
}

// CheckBox toggles checked when clicked. s is drawn to the right of r.
func (c *Context) CheckBox(r Rect, s string, checked bool) bool {
	if c.clicked(r) {
		checked = !checked
	}
	st := styles[c.state(r)]
	on := checked
	c.record(func(dst *ebiten.Image) {
		strokeRect(dst, r, st.Border)
		if on {
			fillRect(dst, r.Inset(3), st.Border)
		}
		c.drawText(dst, s, r.X+r.W+textPadding, r.Y+r.H/2, text.AlignStart, labelColor)
	})
	return checked
}

// Slider lets the value be dragged across [min, max]. s is drawn on the
// left of r, the value on the right when showValue is set.
func (c *Context) Slider(r Rect, s string, value, min, max float64, showValue bool) float64 {
	c.press(r)
	if c.isActive(r) && (c.in.LeftDown || c.in.LeftPressed) {
		value = min + (c.in.CursorX-r.X)/r.W*(max-min)
	}
	value = clamp(value, min, max)

	st := styles[c.state(r)]
	pos := 0.0
	if max > min {
		pos = (value - min) / (max - min)
	}
	v := value
	c.record(func(dst *ebiten.Image) {
		drawBox(dst, r, styles[stateNormal])
		inner := r.Inset(borderWidth + 1)
		thumb := R(inner.X+pos*(inner.W-sliderThumbWidth), inner.Y, sliderThumbWidth, inner.H)
		fillRect(dst, thumb, st.Border)
		c.drawText(dst, s, r.X-textPadding, r.Y+r.H/2, text.AlignEnd, labelColor)
		if showValue {
			c.drawText(dst, strconv.FormatFloat(v, 'f', 2, 64), r.X+r.W+textPadding, r.Y+r.H/2, text.AlignStart, labelColor)
		}
	})
	return value
}

// Spinner edits an integer within [min, max] with its side buttons, the
// mouse wheel, or by typing while the pointer is over it.
func (c *Context) Spinner(r Rect, value, min, max int) int {
	left := R(r.X, r.Y, spinButtonWidth, r.H)
	right := R(r.X+r.W-spinButtonWidth, r.Y, spinButtonWidth, r.H)
	box := R(r.X+spinButtonWidth+comboSelectGap, r.Y, r.W-2*(spinButtonWidth+comboSelectGap), r.H)

	if c.clicked(left) {
		value--
	}
	if c.clicked(right) {
		value++
	}

	editing := c.hovered(box)
	if editing {
		switch {
		case c.in.WheelY > 0:
			value++
		case c.in.WheelY < 0:
			value--
		}
		value = editDigits(value, c.in.Chars, c.in.Backspace)
	}
	value = clamp(value, min, max)

	leftSt, rightSt := styles[c.state(left)], styles[c.state(right)]
	boxSt := styles[stateNormal]
	if editing {
		boxSt = styles[statePressed]
	}
	v := value
	c.record(func(dst *ebiten.Image) {
		drawBox(dst, left, leftSt)
		c.drawText(dst, "<", left.X+left.W/2, left.Y+left.H/2, text.AlignCenter, leftSt.Text)
		drawBox(dst, right, rightSt)
		c.drawText(dst, ">", right.X+right.W/2, right.Y+right.H/2, text.AlignCenter, rightSt.Text)
		drawBox(dst, box, boxSt)
		c.drawText(dst, strconv.Itoa(v), box.X+box.W/2, box.Y+box.H/2, text.AlignCenter, boxSt.Text)
	})
	return value
}

// ComboBox cycles through items: left click selects the next one, right
// click the previous one.
func (c *Context) ComboBox(r Rect, items []string, active int) int {
	n := len(items)
	if n == 0 {
		return 0
	}
	if c.clicked(r) {
		active++
	}
	if c.in.RightPressed && c.hovered(r) {
		active--
	}
	active = ((active % n) + n) % n

	st := styles[c.state(r)]
	main := R(r.X, r.Y, r.W-comboSelectWidth-comboSelectGap, r.H)
	sel := R(main.X+main.W+comboSelectGap, r.Y, comboSelectWidth, r.H)
	name := items[active]
	counter := fmt.Sprintf("%d/%d", active+1, n)
	c.record(func(dst *ebiten.Image) {
		drawBox(dst, main, st)
		c.drawText(dst, name, main.X+main.W/2, main.Y+main.H/2, text.AlignCenter, st.Text)
		drawBox(dst, sel, st)
		c.drawText(dst, counter, sel.X+sel.W/2, sel.Y+sel.H/2, text.AlignCenter, st.Text)
	})
	return active
}

// editDigits applies typed runes to value: digits append, '-' flips the
// sign and backspace drops the last digit.
func editDigits(value int, chars []rune, backspace bool) int {
	for _, ch := range chars {
		switch {
		case ch >= '0' && ch <= '9':
			d := int(ch - '0')
			if value < 0 {
				value = value*10 - d
			} else {
				value = value*10 + d
			}
		case ch == '-':
			value = -value
		}
	}
	if backspace {
		value /= 10
	}
	return value
}

func (c *Context) drawText(dst *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, c.face, op)
}

func drawBox(dst *ebiten.Image, r Rect, st style) {
	fillRect(dst, r, st.Base)
	strokeRect(dst, r, st.Border)
}

func fillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), borderWidth, clr, false)
}

func clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
