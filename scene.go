// Package povmosaic converts a raster image into a POV-Ray scene of
// solid 3D primitives, one per tile of a regular plane partition
// (triangular 3/6, square 4/4 or hexagonal 6/3). Tile color, map input
// and inclusion are sampled from the source pixels; partially
// transparent pixels are dithered stochastically against their alpha.
package povmosaic

import (
	"bufio"
	"io"
	"math/rand"
	"time"
)

// Convert writes a complete scene for g to w: fixed header boilerplate,
// one object record per included tile in strict raster order, then the
// closing boilerplate. The grid is validated once up front; a zero-size
// grid produces a valid scene with no tile records.
func Convert(g *Grid, w io.Writer, opt Options) error {
	if err := g.Validate(); err != nil {
		return err
	}

	now := time.Now()
	rng := opt.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	bw := bufio.NewWriter(w)
	e := &emitter{g: g, w: bw, opt: opt, rng: rng}

	switch opt.Lattice {
	case Square44:
		writeHeader44(bw, g, opt, now)
		convert44(e)
		writeFooter44(bw, g)
	case Hexagonal63:
		writeHeader63(bw, g, opt, now)
		convert63(e)
		writeFooter63(bw, g)
	default:
		writeHeader36(bw, g, opt, now)
		convert36(e)
		writeFooter36(bw, g)
	}

	return bw.Flush()
}
