// Package testutil provides testing utilities for linvec.
//
// This package is intended for use in tests only. It generates seeded,
// reproducible coordinate slices for property-style tests.
//
// # Random Coordinates
//
//	rng := testutil.NewRNG(seed)
//	coords := rng.Uniform(3)          // uniform [-1, 1)
//	coords = rng.UniformRange(2, 0, 10)
//	coords = rng.NonZero(4)           // never the zero vector
//	batch := rng.Gaussian(16, 3)      // 16 samples of dimension 3
package testutil
