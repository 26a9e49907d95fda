package povmosaic

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Lattice selects the regular plane partition the image is tiled with.
// Names follow the polygon/degree classification of plane partitions.
type Lattice int

const (
	Triangular36 Lattice = iota // 3/6, triangle packing
	Square44                    // 4/4, square packing
	Hexagonal63                 // 6/3, honeycomb packing
)

func (l Lattice) String() string {
	switch l {
	case Square44:
		return "44"
	case Hexagonal63:
		return "63"
	default:
		return "36"
	}
}

// Vec3 is an x, y, z triple formatted into scene vectors.
type Vec3 [3]float64

func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

func (v Vec3) pov() string {
	return fmt.Sprintf("<%s, %s, %s>", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]))
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Options configures one conversion run. The zero value converts with
// the 3/6 lattice, source colors, identity transfer curve and no jitter.
type Options struct {
	Lattice Lattice

	// ColorTransform is applied to every normalized channel value
	// before it is written. nil leaves the channel untouched and the
	// render-time cm() declare in charge.
	ColorTransform func(channel float64) float64

	// FilterValue and TransmitValue compute the pigment filter and
	// transmit terms from mapped luminance and alpha. nil emits the
	// render-time f_val()/t_val() call form instead of a number.
	FilterValue   func(luma, alpha float64) float64
	TransmitValue func(luma, alpha float64) float64

	// Map is the transfer curve luminance passes through before it
	// drives scale/rotate/translate. nil emits the raw value, leaving
	// the render-time map() spline in charge.
	Map func(c float64) float64

	// NearestLuma forces nearest-neighbor luminance sampling on the
	// lattices that interpolate by default (3/6 and 6/3).
	NearestLuma bool

	// NoAlphaStretch disables the 1.02a-0.01 alpha extension applied
	// before the dither draw.
	NoAlphaStretch bool

	// BrickOffset and BrickRotate alter even rows of the 4/4 lattice
	// (the evenodd_offset and evenodd_rotate declares).
	BrickOffset Vec3
	BrickRotate Vec3

	// Map-driven per-tile modifier magnitudes (the move_map, scale_map
	// and rotate_map declares).
	MoveMap   Vec3
	ScaleMap  Vec3
	RotateMap Vec3

	// Jitter magnitudes. A zero vector keeps the render-time
	// rand(rnd_1) calls in the record text; a nonzero vector makes the
	// conversion draw the offsets itself, in fixed per-tile order:
	// dither, normal move, normal rotate, rotate, move.
	NormalMoveJitter   Vec3
	NormalRotateJitter Vec3
	RotateJitter       Vec3
	MoveJitter         Vec3

	// Palette snaps every tile color to its nearest entry (Lab
	// distance) before the color transform. Empty disables quantization.
	Palette []colorful.Color

	// Rand supplies the run's single random stream. nil seeds a new
	// generator from the wall clock.
	Rand *rand.Rand
}

// DefaultOptions returns the options matching the original exporter
// defaults: per-tile source color, bilinear luminance where the lattice
// interpolates, alpha stretch on, everything else off.
func DefaultOptions() Options {
	return Options{}
}
