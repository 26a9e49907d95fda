package povmosaic

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// nearestPaletteColor returns the palette entry closest to (r, g, b).
// Distance is measured in Lab space, matching how palettes are
// clustered and tracking perceived difference far better than RGB.
func nearestPaletteColor(palette []colorful.Color, r, g, b float64) (float64, float64, float64) {
	c := colorful.Color{R: r, G: g, B: b}
	best := 0
	bestD := math.MaxFloat64
	for i, p := range palette {
		if d := c.DistanceLab(p); d < bestD {
			bestD = d
			best = i
		}
	}
	p := palette[best]
	return p.R, p.G, p.B
}
