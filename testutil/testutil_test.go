package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/linvec/internal/floats"
)

func TestUniform(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Uniform(32)

	assert.Len(t, v, 32)
	for _, c := range v {
		assert.GreaterOrEqual(t, c, -1.0)
		assert.Less(t, c, 1.0)
	}
}

func TestUniformRange(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformRange(64, 2, 3)

	assert.Len(t, v, 64)
	for _, c := range v {
		assert.GreaterOrEqual(t, c, 2.0)
		assert.Less(t, c, 3.0)
	}
}

func TestNonZero(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		v := rng.NonZero(2)
		assert.Len(t, v, 2)
		assert.GreaterOrEqual(t, floats.Norm(v), minNonZeroNorm)
	}
}

func TestGaussian(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Gaussian(8, 3)

	assert.Len(t, v, 8)
	for _, vec := range v {
		assert.Len(t, vec, 3)
	}

	// Appending to one sample must not clobber its neighbor.
	_ = append(v[0], 99)
	assert.NotEqual(t, 99.0, v[1][0])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Uniform(10)

	rng.Reset()
	v2 := rng.Uniform(10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
