// Package testutil provides deterministic helpers for tests and
// benchmarks: a seeded random number generator and identifier-style
// string generation for exercising symbol pools.
package testutil
