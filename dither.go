package povmosaic

import "math/rand"

// stretchAlpha extends normalized alpha by one percent on both ends so
// fully opaque pixels always survive the dither draw and fully
// transparent ones practically never do.
func stretchAlpha(a float64) float64 {
	a = 1.02*a - 0.01
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// ditherGate decides tile inclusion by comparing alpha against one
// uniform draw from the run's stream. Callers with no alpha channel
// must bypass the gate entirely so the draw count stays per-candidate.
func ditherGate(alpha float64, rng *rand.Rand) bool {
	return alpha >= rng.Float64()
}
