package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Angles below are in degrees. 0 points straight down and angles grow
// towards the right, so 90 points right and 180 points up.

const (
	circleErrorRate = 0.5
	minRadius       = 0.1
	lineWidth       = 1
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

type point struct {
	X, Y float64
}

func arcPoint(cx, cy, radius, angle float64) point {
	rad := angle * math.Pi / 180
	return point{X: cx + math.Sin(rad)*radius, Y: cy + math.Cos(rad)*radius}
}

// arcSpan orders the angles and picks the segment count. Fewer than 4
// segments means "enough to look round at this radius".
func arcSpan(radius, start, end float64, segments int) (float64, float64, int) {
	if end < start {
		start, end = end, start
	}
	if segments < 4 {
		th := math.Acos(2*math.Pow(1-circleErrorRate/radius, 2) - 1)
		segments = 0
		if th > 0 && !math.IsNaN(th) {
			segments = int((end - start) * math.Ceil(2*math.Pi/th) / 360)
		}
		if segments <= 0 {
			segments = 4
		}
	}
	return start, end, segments
}

// arcPoints returns segments+1 points from start to end.
func arcPoints(cx, cy, radius, start, end float64, segments int) []point {
	pts := make([]point, 0, segments+1)
	step := (end - start) / float64(segments)
	for i := 0; i <= segments; i++ {
		pts = append(pts, arcPoint(cx, cy, radius, start+float64(i)*step))
	}
	return pts
}

func sectorPath(cx, cy, radius, start, end float64, segments int) *vector.Path {
	if radius <= 0 {
		radius = minRadius
	}
	start, end, segments = arcSpan(radius, start, end, segments)

	path := &vector.Path{}
	path.MoveTo(float32(cx), float32(cy))
	for _, p := range arcPoints(cx, cy, radius, start, end, segments) {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return path
}

// ringPath returns nil when the ring degenerates into a sector.
func ringPath(cx, cy, inner, outer, start, end float64, segments int) *vector.Path {
	if outer < inner {
		inner, outer = outer, inner
	}
	if outer <= 0 {
		outer = minRadius
	}
	if inner <= 0 {
		return nil
	}
	start, end, segments = arcSpan(outer, start, end, segments)

	outerPts := arcPoints(cx, cy, outer, start, end, segments)
	innerPts := arcPoints(cx, cy, inner, start, end, segments)

	path := &vector.Path{}
	path.MoveTo(float32(outerPts[0].X), float32(outerPts[0].Y))
	for _, p := range outerPts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	for i := len(innerPts) - 1; i >= 0; i-- {
		path.LineTo(float32(innerPts[i].X), float32(innerPts[i].Y))
	}
	path.Close()
	return path
}

func DrawCircleSector(dst *ebiten.Image, cx, cy, radius, start, end float64, segments int, clr color.Color) {
	fillPath(dst, sectorPath(cx, cy, radius, start, end, segments), clr)
}

func DrawCircleSectorLines(dst *ebiten.Image, cx, cy, radius, start, end float64, segments int, clr color.Color) {
	strokePath(dst, sectorPath(cx, cy, radius, start, end, segments), clr)
}

func DrawRing(dst *ebiten.Image, cx, cy, inner, outer, start, end float64, segments int, clr color.Color) {
	if start == end {
		return
	}
	path := ringPath(cx, cy, inner, outer, start, end, segments)
	if path == nil {
		DrawCircleSector(dst, cx, cy, max(inner, outer), start, end, segments, clr)
		return
	}
	fillPath(dst, path, clr)
}

func DrawRingLines(dst *ebiten.Image, cx, cy, inner, outer, start, end float64, segments int, clr color.Color) {
	if start == end {
		return
	}
	path := ringPath(cx, cy, inner, outer, start, end, segments)
	if path == nil {
		DrawCircleSectorLines(dst, cx, cy, max(inner, outer), start, end, segments, clr)
		return
	}
	strokePath(dst, path, clr)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

func strokePath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	op := &vector.StrokeOptions{}
	op.Width = lineWidth
	op.LineJoin = vector.LineJoinRound
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
