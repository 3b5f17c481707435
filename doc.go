// Package lexbase provides the memory foundation for compiler front ends.
//
// It bundles a small set of collaborating primitives that lexers, parsers
// and symbol tables typically need before any language-specific work starts:
//
//   - arena: a page-based bump allocator with snapshot/rollback, typed
//     aligned allocation, an allocator adapter for containers, and scoped
//     construction with finalizer-only cleanup.
//   - sym: hash-consed, immutable string records living inside an arena,
//     with pointer-sized handles whose equality is O(1).
//   - ring: a fixed-capacity ring buffer retaining the last N values.
//   - utf8x: a byte-at-a-time UTF-8 encoder/decoder for single scalar
//     values.
//   - loc: source positions and ranges for diagnostics.
//
// # Quick Start
//
//	pool := sym.NewPool()
//	foo := pool.Sym("foo")
//	bar := pool.Sym("bar")
//	foo2 := pool.Sym("foo")
//
//	// Interned handles compare by identity.
//	_ = foo == foo2 // true
//	_ = foo == bar  // false
//
// # Concurrency Model
//
// A single Arena or Pool is not safe for concurrent use. Callers needing
// concurrent interning should shard pools per goroutine and merge results
// out-of-band; see the sym package documentation.
package lexbase
