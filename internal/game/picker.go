package game

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rings-and-easings/internal/rings"
)

// pickColor asks for a base color in a native dialog and turns the color
// scheme on with its hue, saturation and value.
func (g *Game) pickColor() error {
	current := rings.HSV(g.params.Hue, g.params.Saturation, g.params.Value)
	picked, err := zenity.SelectColor(
		zenity.Title("Ring color"),
		zenity.Color(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select color: %w", err)
	}

	h, s, v, ok := toHSV(picked)
	if !ok {
		return nil
	}
	g.params.Colors = true
	g.params.Hue, g.params.Saturation, g.params.Value = h, s, v
	g.anim.Recolor(&g.params)

	g.infoLog.Printf("picked color hue=%.1f sat=%.2f val=%.2f", h, s, v)
	return nil
}
