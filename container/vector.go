// Package container implements allocator-aware container data structures.
package container

import (
	"iter"

	"github.com/hupe1980/lexbase/arena"
)

// Vector is a dynamic array that draws its backing storage from an
// arena.Allocator. Outgrown buffers are handed back via Deallocate, which
// for arenas is a no-op: the old storage stays allocated and inert until
// the arena is freed. Not goroutine-safe.
type Vector[T any] struct {
	alloc arena.Allocator[T]
	items []T
}

// NewVector creates an empty Vector drawing from alloc.
func NewVector[T any](alloc arena.Allocator[T]) Vector[T] {
	return Vector[T]{alloc: alloc}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// Cap returns the capacity of the current backing storage.
func (v *Vector[T]) Cap() int {
	return cap(v.items)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.items) {
		panic("container: index out of range")
	}
	return v.items[i]
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= len(v.items) {
		panic("container: index out of range")
	}
	v.items[i] = x
}

// Append adds x at the end, growing the backing storage if needed.
func (v *Vector[T]) Append(x T) {
	if len(v.items) == cap(v.items) {
		v.grow()
	}
	v.items = append(v.items, x)
}

// All iterates over the elements in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.items {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Slice returns the elements as a borrowed slice. The slice is backed by
// arena memory and must not be appended to.
func (v *Vector[T]) Slice() []T {
	return v.items
}

func (v *Vector[T]) grow() {
	newCap := 2 * cap(v.items)
	if newCap < 4 {
		newCap = 4
	}

	fresh := v.alloc.Allocate(newCap)
	copy(fresh, v.items)
	v.alloc.Deallocate(v.items)
	v.items = fresh[:len(v.items)]
}
