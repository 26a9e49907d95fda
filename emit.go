package povmosaic

import (
	"bufio"
	"fmt"
	"math/rand"
)

// emitter owns the output stream and the run's random stream for the
// duration of one conversion. Sampling methods are pure; everything
// that writes or draws is strictly sequential in raster order.
type emitter struct {
	g   *Grid
	w   *bufio.Writer
	opt Options
	rng *rand.Rand
}

// colorAt returns the normalized tile color at (x, y). Grey sources
// broadcast the single channel; an active palette snaps the result to
// its nearest entry.
func (e *emitter) colorAt(x, y float64) (r, g, b float64) {
	m := float64(e.g.Max)
	if e.g.Z > 2 {
		r = float64(e.g.Sample(x, y, 0)) / m
		g = float64(e.g.Sample(x, y, 1)) / m
		b = float64(e.g.Sample(x, y, 2)) / m
	} else {
		r = float64(e.g.Sample(x, y, 0)) / m
		g, b = r, r
	}
	if len(e.opt.Palette) > 0 {
		r, g, b = nearestPaletteColor(e.opt.Palette, r, g, b)
	}
	return r, g, b
}

// lumaAt returns the mapped, normalized luminance driving the map
// modifiers, bilinear unless the lattice samples nearest-neighbor or
// the caller overrode it.
func (e *emitter) lumaAt(x, y float64, bilinear bool) float64 {
	var l int
	if bilinear && !e.opt.NearestLuma {
		l = e.g.LumaBilinear(x, y)
	} else {
		l = e.g.Luma(x, y)
	}
	c := float64(l) / float64(e.g.Max)
	if e.opt.Map != nil {
		c = e.opt.Map(c)
	}
	return c
}

// alphaAt returns the tile alpha and the dither decision, consuming
// exactly one draw per candidate tile on alpha sources and none
// otherwise. Alpha reads 1.0 when the source has no alpha channel.
func (e *emitter) alphaAt(x, y float64) (float64, bool) {
	if !e.g.HasAlpha() {
		return 1.0, true
	}
	a := float64(e.g.Sample(x, y, e.g.Z-1)) / float64(e.g.Max)
	if !e.opt.NoAlphaStretch {
		a = stretchAlpha(a)
	}
	return a, ditherGate(a, e.rng)
}

// pigment renders the rgbft argument list for one tile. With nil
// transfer functions the render-time cm/f_val/t_val declares stay in
// charge; configured functions are resolved to numbers here instead.
func (e *emitter) pigment(r, g, b, c, a float64) string {
	cm := func(v float64) string {
		if e.opt.ColorTransform != nil {
			v = e.opt.ColorTransform(v)
		}
		return "cm(" + ftoa(v) + ")"
	}
	fv := "f_val(" + ftoa(c) + ", " + ftoa(a) + ")"
	if e.opt.FilterValue != nil {
		fv = ftoa(e.opt.FilterValue(c, a))
	}
	tv := "t_val(" + ftoa(c) + ", " + ftoa(a) + ")"
	if e.opt.TransmitValue != nil {
		tv = ftoa(e.opt.TransmitValue(c, a))
	}
	return fmt.Sprintf("rgbft<%s, %s, %s, %s, %s>", cm(r), cm(g), cm(b), fv, tv)
}

// jitterVec consumes three draws and renders them as a centered unit
// offset vector.
func (e *emitter) jitterVec() string {
	a := e.rng.Float64() - 0.5
	b := e.rng.Float64() - 0.5
	c := e.rng.Float64() - 0.5
	return fmt.Sprintf("<%s, %s, %s>", ftoa(a), ftoa(b), ftoa(c))
}

// normalLine renders the per-tile normal with its move and rotate
// jitter terms, drawing in that order when the magnitudes are set.
func (e *emitter) normalLine() string {
	mv := "(<rand(rnd_1), rand(rnd_1), rand(rnd_1)>-0.5)"
	if !e.opt.NormalMoveJitter.IsZero() {
		mv = e.jitterVec()
	}
	rot := "(<rand(rnd_1), rand(rnd_1), rand(rnd_1)>-0.5)"
	if !e.opt.NormalRotateJitter.IsZero() {
		rot = e.jitterVec()
	}
	return fmt.Sprintf("normal{thingie_normal translate(normal_move_rnd * %s) rotate(normal_rotate_rnd * %s)}", mv, rot)
}

// rotateJitter renders the random rotation line. The third component
// alone is centered, as the exported scenes have always had it.
func (e *emitter) rotateJitter() string {
	if e.opt.RotateJitter.IsZero() {
		return "rotate(rotate_rnd * (<rand(rnd_1), rand(rnd_1), rand(rnd_1)-0.5>))"
	}
	a := e.rng.Float64()
	b := e.rng.Float64()
	c := e.rng.Float64() - 0.5
	return fmt.Sprintf("rotate(rotate_rnd * <%s, %s, %s>)", ftoa(a), ftoa(b), ftoa(c))
}

// moveJitter renders the random placement line.
func (e *emitter) moveJitter() string {
	if e.opt.MoveJitter.IsZero() {
		return "translate(move_rnd * (<rand(rnd_1), rand(rnd_1), rand(rnd_1)>-0.5))"
	}
	return fmt.Sprintf("translate(move_rnd * %s)", e.jitterVec())
}

// mapTriple renders the <map(c), map(c), map(c)> vector the map-driven
// modifiers multiply with.
func mapTriple(c float64) string {
	m := "map(" + ftoa(c) + ")"
	return "<" + m + ", " + m + ", " + m + ">"
}

// openRecord writes the textured opening of one thingie block. The
// normal jitter draws happen here, between the dither draw and the
// transform chain draws.
func (e *emitter) openRecord(r, g, b, c, a float64) {
	e.w.WriteString("    object{thingie\n")
	e.w.WriteString("      #if (yes_color)\n")
	e.w.WriteString("        texture{\n")
	fmt.Fprintf(e.w, "          pigment{%s}\n", e.pigment(r, g, b, c, a))
	e.w.WriteString("          finish{thingie_finish}\n")
	fmt.Fprintf(e.w, "          %s", e.normalLine())
	e.w.WriteString("        }\n")
	e.w.WriteString("        texture{thingie_texture_2}\n")
	e.w.WriteString("      #end\n")
}

// tline writes one transform-chain line. Empty strings still produce a
// line, matching the exported scene layout.
func (e *emitter) tline(s string) {
	e.w.WriteString("      ")
	e.w.WriteString(s)
	e.w.WriteString("\n")
}

func (e *emitter) closeRecord() {
	e.w.WriteString("    }\n")
}

func (e *emitter) rowComment(row int) {
	fmt.Fprintf(e.w, "\n  // Row %d\n", row)
}
