// Package sym implements hash-consed string interning for compiler
// front ends.
//
// # Overview
//
// A Pool stores every distinct string exactly once, as an immutable
// length-prefixed record inside an arena. A Sym is a pointer-sized handle
// to such a record: because contents are deduplicated, two Syms from the
// same pool are equal iff they are the same handle, making == and map
// keys O(1) regardless of string length.
//
//	pool := sym.NewPool()
//	a := pool.Sym("add")
//	b := pool.Sym("add")
//	// a == b
//
// The empty string is special: it is never materialized as a record. The
// zero Sym value is the canonical empty symbol and can be created without
// a pool.
//
// # Ordering
//
// Equality is identity, but ordering (Compare, CompareByte) is defined by
// lexicographic byte comparison of the contents, independent of interning.
// Use it for sorted containers, not for equality tests.
//
// # Lifetime
//
// A Sym borrows the record it refers to. It dangles once the owning pool
// is freed; keeping symbols alive past their pool is the caller's
// responsibility.
//
// # Concurrency Model
//
// A Pool performs no internal synchronization. For concurrent interning,
// shard pools per goroutine and merge results out-of-band. Note that
// symbols from different pools never compare equal by identity.
package sym
