// Package testutil provides testing utilities for sparse sets.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for reproducible operation sequences
// and a map-backed reference set for differential testing.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.Perm(1000)          // distinct identifiers
//	id := rng.Uint32n(maxID)       // a single identifier
//
// # Reference Model
//
//	ref := testutil.NewReferenceSet()
//	ref.Insert(e)
//	ref.Contains(e)
package testutil
