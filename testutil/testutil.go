package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/linvec/internal/floats"
)

// minNonZeroNorm is the smallest norm accepted by NonZero.
const minNonZeroNorm = 1e-3

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform returns dim coordinates in range [-1, 1).
func (r *RNG) Uniform(dim int) []float64 {
	return r.UniformRange(dim, -1, 1)
}

// UniformRange returns dim coordinates in range [minVal, maxVal).
func (r *RNG) UniformRange(dim int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniformLocked(dim, minVal, maxVal)
}

func (r *RNG) uniformLocked(dim int, minVal, maxVal float64) []float64 {
	span := maxVal - minVal
	dst := make([]float64, dim)
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
	return dst
}

// NonZero returns dim coordinates in range [-10, 10) whose norm is at least 1e-3.
func (r *RNG) NonZero(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		dst := r.uniformLocked(dim, -10, 10)
		if floats.Norm(dst) >= minNonZeroNorm {
			return dst
		}
	}
}

// Gaussian generates num coordinate slices drawn from a standard normal distribution.
// Uses a single backing array for efficiency.
func (r *RNG) Gaussian(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	out := make([][]float64, num)

	for i := range num {
		vec := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		out[i] = vec
	}

	return out
}
