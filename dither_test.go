package povmosaic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStretchAlpha(t *testing.T) {
	assert.Equal(t, 1.0, stretchAlpha(1.0))
	assert.Equal(t, 0.0, stretchAlpha(0.0))
	assert.Equal(t, 0.5, stretchAlpha(0.5))
	// The extension clamps: near-opaque goes all the way up.
	assert.Equal(t, 1.0, stretchAlpha(0.995))
	assert.Equal(t, 0.0, stretchAlpha(0.005))
}

func TestDitherGateExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		assert.True(t, ditherGate(1.0, rng))
	}
	for i := 0; i < 1000; i++ {
		assert.False(t, ditherGate(0.0, rng), "zero alpha must lose against a nonzero draw")
	}
}

func TestDitherGateIsStatisticallyFaithful(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 20000
	kept := 0
	for i := 0; i < n; i++ {
		if ditherGate(0.5, rng) {
			kept++
		}
	}
	frac := float64(kept) / n
	assert.InDelta(t, 0.5, frac, 0.02)
}

func TestDitherGateConsumesOneDrawPerCandidate(t *testing.T) {
	// Two gates driven by the same seed must see the same stream
	// regardless of their alpha values: one draw per candidate.
	a := rand.New(rand.NewSource(3))
	b := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		ditherGate(0.3, a)
		ditherGate(0.9, b)
	}
	assert.Equal(t, a.Float64(), b.Float64())
}
