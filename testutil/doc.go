// Package testutil provides testing utilities for vectormap.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, 50) // Zipf-skewed, many duplicates
//
// # Reference Model
//
// Model is a slice-backed ordered multimap written with the slices package.
// Randomized tests apply the same operations to a VectorMap and a Model and
// compare the results after every step.
package testutil
