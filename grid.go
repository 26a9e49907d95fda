package povmosaic

import (
	"fmt"
	"math"
)

// Grid is a decoded raster image: Z interleaved integer channels per
// pixel, row-major, top-left origin. Z is 1 (grey), 2 (grey+alpha),
// 3 (RGB) or 4 (RGBA); Max is the channel ceiling, 255 or 65535.
type Grid struct {
	X, Y, Z int
	Max     int
	Pix     []int // len = X*Y*Z
}

// HasAlpha reports whether the last channel is an alpha channel.
func (g *Grid) HasAlpha() bool {
	return g.Z == 2 || g.Z == 4
}

// Validate checks the grid invariants once, before a conversion run.
// The samplers themselves never validate; clamping makes every
// coordinate legal as long as the buffer shape is consistent.
func (g *Grid) Validate() error {
	if g.X < 0 || g.Y < 0 {
		return fmt.Errorf("grid: negative size %dx%d", g.X, g.Y)
	}
	if g.Z < 1 || g.Z > 4 {
		return fmt.Errorf("grid: unsupported channel count %d", g.Z)
	}
	if g.Max != 255 && g.Max != 65535 {
		return fmt.Errorf("grid: unsupported channel maximum %d", g.Max)
	}
	if len(g.Pix) != g.X*g.Y*g.Z {
		return fmt.Errorf("grid: have %d samples, want %d", len(g.Pix), g.X*g.Y*g.Z)
	}
	return nil
}

// Sample returns channel z of the pixel nearest to (x, y). Fractional
// coordinates truncate to the lower integer pixel; coordinates beyond
// the image repeat the edge pixel instead of going out of range.
func (g *Grid) Sample(x, y float64, z int) int {
	cx := clampInt(int(math.Floor(x)), 0, g.X-1)
	cy := clampInt(int(math.Floor(y)), 0, g.Y-1)
	return g.Pix[(cy*g.X+cx)*g.Z+z]
}

// Luma weights. The exact constants matter: downstream map thresholds
// are sensitive to off-by-one changes at tile boundaries.
const (
	lumaR = 0.298936021293775
	lumaG = 0.587043074451121
	lumaB = 0.114020904255103
)

// Luma returns the brightness of the pixel nearest to (x, y), truncated
// to int. Sources with fewer than three channels are treated as grey.
func (g *Grid) Luma(x, y float64) int {
	if g.Z < 3 {
		return g.Sample(x, y, 0)
	}
	return int(lumaR*float64(g.Sample(x, y, 0)) + lumaG*float64(g.Sample(x, y, 1)) + lumaB*float64(g.Sample(x, y, 2)))
}

// LumaBilinear interpolates Luma between the four pixels around the
// fractional coordinate (x, y), truncating the result to int. Corners
// beyond the image reuse edge values through Sample clamping.
func (g *Grid) LumaBilinear(x, y float64) int {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	x1 := x0 + 1
	y1 := y0 + 1

	v := float64(g.Luma(x0, y0))*(x1-x)*(y1-y) +
		float64(g.Luma(x0, y1))*(x1-x)*(y-y0) +
		float64(g.Luma(x1, y0))*(x-x0)*(y1-y) +
		float64(g.Luma(x1, y1))*(x-x0)*(y-y0)
	return int(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
