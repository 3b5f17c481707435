package testutil

import "math/rand"

const (
	identHead = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identTail = identHead + "0123456789"
)

// RNG encapsulates a seeded random number generator.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Ident generates an identifier-like string of length in [1, maxLen].
func (r *RNG) Ident(maxLen int) string {
	n := 1 + r.rand.Intn(maxLen)
	b := make([]byte, n)
	b[0] = identHead[r.rand.Intn(len(identHead))]
	for i := 1; i < n; i++ {
		b[i] = identTail[r.rand.Intn(len(identTail))]
	}
	return string(b)
}

// Idents generates num identifier-like strings. Duplicates are possible
// and deliberate: interning workloads revisit the same names.
func (r *RNG) Idents(num, maxLen int) []string {
	out := make([]string, num)
	for i := range out {
		out[i] = r.Ident(maxLen)
	}
	return out
}
