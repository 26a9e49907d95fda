package povmosaic

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertString(t *testing.T, g *Grid, opt Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Convert(g, &buf, opt))
	return buf.String()
}

func TestConvertRejectsInvalidGrid(t *testing.T) {
	var buf bytes.Buffer
	g := &Grid{X: 2, Y: 2, Z: 3, Max: 255, Pix: make([]int, 5)}
	assert.Error(t, Convert(g, &buf, Options{}))
}

func TestFullyTransparentPixelsEmitNoRecords(t *testing.T) {
	g := &Grid{X: 2, Y: 2, Z: 4, Max: 255, Pix: []int{
		255, 0, 0, 0, 0, 255, 0, 0,
		0, 0, 255, 0, 255, 255, 255, 0,
	}}
	require.NoError(t, g.Validate())
	out := convertString(t, g, Options{Lattice: Square44, Rand: rand.New(rand.NewSource(1))})
	assert.Equal(t, 0, countRecords(out))
	assert.Contains(t, out, "happy rendering")
}

func TestOpaquePixelsAlwaysEmitRecords(t *testing.T) {
	g := &Grid{X: 2, Y: 2, Z: 4, Max: 255, Pix: []int{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}}
	require.NoError(t, g.Validate())
	out := convertString(t, g, Options{Lattice: Square44, Rand: rand.New(rand.NewSource(1))})
	assert.Equal(t, 4, countRecords(out))
}

func TestNoAlphaSourceEmitsOpaquePigment(t *testing.T) {
	g := rgbGrid(t, 1, 1, []int{255, 255, 255})
	out := convertString(t, g, Options{Lattice: Square44})
	assert.Equal(t, 1, countRecords(out))
	// Alpha reads 1.0 without an alpha channel.
	assert.Contains(t, out, "f_val(1, 1)")
	assert.Contains(t, out, "t_val(1, 1)")
}

func TestNilTransferFunctionsEmitCallForm(t *testing.T) {
	g := rgbGrid(t, 1, 1, []int{255, 0, 0})
	out := convertString(t, g, Options{Lattice: Square44})
	// 76/255 mapped luminance feeds the declared functions at render
	// time; nothing is resolved in Go.
	lm := ftoa(76.0 / 255.0)
	assert.Contains(t, out, "cm(1)")
	assert.Contains(t, out, "cm(0)")
	assert.Contains(t, out, "f_val("+lm+", 1)")
	assert.Contains(t, out, "t_val("+lm+", 1)")
}

func TestTransferFunctionsResolveToLiterals(t *testing.T) {
	g := rgbGrid(t, 1, 1, []int{255, 0, 0})
	out := convertString(t, g, Options{
		Lattice:        Square44,
		ColorTransform: func(v float64) float64 { return v / 2 },
		FilterValue:    func(luma, alpha float64) float64 { return 0.75 },
		TransmitValue:  func(luma, alpha float64) float64 { return luma },
	})
	// Transformed channels still go through cm() so the declare can
	// keep post-processing them; filter and transmit become numbers.
	assert.Contains(t, out, "cm(0.5)")
	assert.Contains(t, out, fmt.Sprintf("rgbft<cm(0.5), cm(0), cm(0), 0.75, %s>", ftoa(76.0/255.0)))
	assert.NotContains(t, out, "f_val(")
	assert.NotContains(t, out, "t_val(")
}

func TestMapFunctionResolvesModifierInput(t *testing.T) {
	g := rgbGrid(t, 1, 1, []int{255, 255, 255})
	out := convertString(t, g, Options{
		Lattice: Square44,
		Map:     func(c float64) float64 { return 0.25 },
	})
	assert.Contains(t, out, "scale(scale_all + (scale_map * <map(0.25), map(0.25), map(0.25)>))")
	// Filter and transmit read the mapped value too.
	assert.Contains(t, out, "f_val(0.25, 1)")
}

func TestPaletteSnapsTileColors(t *testing.T) {
	g := rgbGrid(t, 2, 1, []int{
		200, 200, 200,
		30, 30, 30,
	})
	out := convertString(t, g, Options{
		Lattice: Square44,
		Palette: []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}},
	})
	assert.Contains(t, out, "rgbft<cm(1), cm(1), cm(1),")
	assert.Contains(t, out, "rgbft<cm(0), cm(0), cm(0),")
	assert.NotContains(t, out, ftoa(200.0/255.0))
}

func TestZeroJitterKeepsRenderTimeRandCalls(t *testing.T) {
	g := rgbGrid(t, 1, 1, []int{0, 0, 0})
	out := convertString(t, g, Options{Lattice: Square44})
	assert.Contains(t, out, "rotate(rotate_rnd * (<rand(rnd_1), rand(rnd_1), rand(rnd_1)-0.5>))")
	assert.Contains(t, out, "translate(move_rnd * (<rand(rnd_1), rand(rnd_1), rand(rnd_1)>-0.5))")
	assert.Contains(t, out, "normal{thingie_normal translate(normal_move_rnd * (<rand(rnd_1), rand(rnd_1), rand(rnd_1)>-0.5)) rotate(normal_rotate_rnd * (<rand(rnd_1), rand(rnd_1), rand(rnd_1)>-0.5))}")
}

func TestJitterMagnitudesStampDeclares(t *testing.T) {
	g := rgbGrid(t, 1, 1, []int{0, 0, 0})
	out := convertString(t, g, Options{
		Lattice:      Square44,
		MoveJitter:   Vec3{2, 2, 2},
		RotateJitter: Vec3{0, 0, 45},
		MoveMap:      Vec3{0, 0, 1},
		Rand:         rand.New(rand.NewSource(7)),
	})
	assert.Contains(t, out, "#declare move_rnd = <2, 2, 2>;")
	assert.Contains(t, out, "#declare rotate_rnd = <0, 0, 45>;")
	assert.Contains(t, out, "#declare move_map = <0, 0, 1>;")
}

func TestJitterDrawOrderIsFixedPerTile(t *testing.T) {
	g := &Grid{X: 2, Y: 1, Z: 4, Max: 255, Pix: []int{
		10, 20, 30, 255,
		40, 50, 60, 255,
	}}
	require.NoError(t, g.Validate())

	one := Vec3{1, 1, 1}
	out := convertString(t, g, Options{
		Lattice:            Square44,
		NormalMoveJitter:   one,
		NormalRotateJitter: one,
		RotateJitter:       one,
		MoveJitter:         one,
		Rand:               rand.New(rand.NewSource(42)),
	})

	// Replay the stream: per tile one dither draw, then normal move,
	// normal rotate, rotate and move vectors in that order.
	exp := rand.New(rand.NewSource(42))
	centered := func() string {
		return fmt.Sprintf("<%s, %s, %s>",
			ftoa(exp.Float64()-0.5), ftoa(exp.Float64()-0.5), ftoa(exp.Float64()-0.5))
	}
	var want []string
	for tile := 0; tile < 2; tile++ {
		exp.Float64() // dither
		nm := centered()
		nr := centered()
		ra := ftoa(exp.Float64())
		rb := ftoa(exp.Float64())
		rc := ftoa(exp.Float64() - 0.5)
		mv := centered()
		want = append(want,
			fmt.Sprintf("normal{thingie_normal translate(normal_move_rnd * %s) rotate(normal_rotate_rnd * %s)}", nm, nr),
			fmt.Sprintf("rotate(rotate_rnd * <%s, %s, %s>)", ra, rb, rc),
			fmt.Sprintf("translate(move_rnd * %s)", mv),
		)
	}

	pos := 0
	for _, w := range want {
		i := strings.Index(out[pos:], w)
		require.GreaterOrEqual(t, i, 0, "missing %q after offset %d", w, pos)
		pos += i + len(w)
	}
}
