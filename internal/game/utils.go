package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/rings-and-easings/internal/config"
)

// toHSV converts c to hue in degrees, saturation and value in [0, 1].
// ok is false for fully transparent colors.
func toHSV(c color.Color) (h, s, v float64, ok bool) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0, 0, 0, false
	}
	h, s, v = cf.Hsv()
	return h, s, v, true
}

// colorsChanged reports whether any parameter feeding the ring colors differs.
func colorsChanged(a, b *config.Params) bool {
	return a.Colors != b.Colors ||
		a.Hue != b.Hue ||
		a.Saturation != b.Saturation ||
		a.Value != b.Value ||
		a.Step != b.Step
}
