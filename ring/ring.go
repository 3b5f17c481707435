// Package ring implements a fixed-capacity ring buffer that retains the
// most recently pushed values.
//
// A Ring with capacity N holds exactly N values at all times. Put
// overwrites the logically oldest value and shifts the window forward by
// one; indexed access addresses the current oldest-to-newest order.
// Lexers use this shape for bounded token lookahead. Not goroutine-safe.
package ring

// Ring is a ring buffer with a capacity fixed at construction.
type Ring[T any] struct {
	buf   []T
	first int
}

// New creates a Ring of capacity n holding n zero values.
// It panics if n < 1.
func New[T any](n int) *Ring[T] {
	if n < 1 {
		panic("ring: capacity must be at least 1")
	}
	return &Ring[T]{buf: make([]T, n)}
}

// Of creates a Ring from the given values, oldest first. Its capacity is
// the number of values.
func Of[T any](vals ...T) *Ring[T] {
	r := New[T](len(vals))
	copy(r.buf, vals)
	return r
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Front returns the oldest retained value.
func (r *Ring[T]) Front() T {
	return r.buf[r.first]
}

// At returns the i-th value in oldest-to-newest order.
// It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	return r.buf[r.slot(i)]
}

// Set replaces the i-th value in oldest-to-newest order.
// It panics if i is out of range.
func (r *Ring[T]) Set(i int, v T) {
	r.buf[r.slot(i)] = v
}

// Put drops the oldest retained value, appends v as the newest, and
// returns v.
func (r *Ring[T]) Put(v T) T {
	r.buf[r.first] = v
	r.first = (r.first + 1) % len(r.buf)
	return v
}

// Reset rewinds the logical window to the underlying storage order.
func (r *Ring[T]) Reset() {
	r.first = 0
}

func (r *Ring[T]) slot(i int) int {
	if i < 0 || i >= len(r.buf) {
		panic("ring: index out of range")
	}
	return (r.first + i) % len(r.buf)
}
