package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rings-and-easings/internal/config"
	"github.com/iburimskiy/rings-and-easings/internal/gui"
)

const helpText = "Press SPACE to pause / unpause!"

// arc is a span of degrees, see the gui shape functions.
type arc struct {
	Start, End float64
}

// ringArcs splits a ring around the base angle into the filled part, which
// opens by angle on both sides, and the outline covering the rest.
func ringArcs(angle float64, p *config.Params) (fill, outline arc) {
	base, pad := float64(p.Angle), float64(p.Padding)
	fill = arc{Start: base - angle + pad, End: base + angle - pad}
	outline = arc{Start: base + angle + pad, End: 360 + base - angle - pad}
	return fill, outline
}

func ringRadius(i int, p *config.Params) float64 {
	return float64(config.BaseRadius + i*p.Spacing)
}

func (g *Game) drawRings(screen *ebiten.Image) {
	p := &g.params
	cx, cy := config.CenterX, config.CenterY

	for i := 0; i < g.anim.Len(); i++ {
		if !p.Visible(i) {
			continue
		}
		clr := g.anim.Ring(i).Color
		fill, outline := ringArcs(g.anim.CurrentAngle(i, p), p)
		radius := ringRadius(i, p)

		// The innermost ring is a pie slice
		if i == 0 {
			if p.DrawRings {
				gui.DrawCircleSector(screen, cx, cy, radius, fill.Start, fill.End, p.Segments, clr)
			}
			if p.DrawLines {
				gui.DrawCircleSectorLines(screen, cx, cy, radius, outline.Start, outline.End, p.Segments, clr)
			}
			continue
		}

		outer := radius + float64(p.Size)
		if p.DrawRings {
			gui.DrawRing(screen, cx, cy, radius, outer, fill.Start, fill.End, p.Segments, clr)
		}
		if p.DrawLines {
			gui.DrawRingLines(screen, cx, cy, radius, outer, outline.Start, outline.End, p.Segments, clr)
		}
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	g.ui.DrawText(screen, g.status(), 10, 10, config.TextColor)
	g.ui.DrawText(screen, helpText, 10, 30, config.TextColor)
}
