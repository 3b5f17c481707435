package arena

// Allocator adapts an Arena to the shape expected by allocator-aware
// containers: an allocate/deallocate pair plus an equality test. Two
// allocators are equal iff they draw from the same Arena, letting a
// container detect when moving its backing storage is unnecessary.
type Allocator[T any] struct {
	arena *Arena
}

// NewAllocator creates an Allocator drawing from a.
func NewAllocator[T any](a *Arena) Allocator[T] {
	return Allocator[T]{arena: a}
}

// Allocate returns n elements of backing storage from the arena.
func (al Allocator[T]) Allocate(n int) []T {
	return Alloc[T](al.arena, n)
}

// Deallocate is always a no-op: arenas never reclaim individual
// allocations. The parameter is the storage previously obtained from
// Allocate.
func (al Allocator[T]) Deallocate(_ []T) {}

// Equal reports whether both allocators reference the same Arena.
func (al Allocator[T]) Equal(other Allocator[T]) bool {
	return al.arena == other.arena
}

// Arena returns the underlying Arena.
func (al Allocator[T]) Arena() *Arena {
	return al.arena
}
