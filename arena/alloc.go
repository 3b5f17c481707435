package arena

import "unsafe"

// Alloc allocates a slice of n elements of type T inside the arena. The
// cursor is aligned to the alignment of T first; elements are laid out
// with a uniform stride of max(sizeof(T), alignof(T)). Elements are
// zeroed.
//
// T must not contain Go pointers; see the package documentation.
// Returns nil if n <= 0.
func Alloc[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	align := int(unsafe.Alignof(zero))
	stride := int(unsafe.Sizeof(zero))
	if stride < align {
		stride = align
	}

	a.Align(align)
	b := a.Alloc(n * stride)
	clear(b)

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n) //nolint:gosec // arena memory is stably addressed
}

// New allocates a single zeroed T inside the arena.
//
// T must not contain Go pointers; see the package documentation.
func New[T any](a *Arena) *T {
	return &Alloc[T](a, 1)[0]
}
