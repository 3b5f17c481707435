package sym

import (
	"iter"
	"strings"
	"unsafe"
)

// Record layout inside the pool's arena: one native word holding the
// content length, the content bytes, and a NUL sentinel that is not
// counted in the length.
const (
	hdrSize  = unsafe.Sizeof(int(0))
	hdrAlign = unsafe.Alignof(int(0))
)

// Sym is a pointer-sized handle to an interned string record. Pass it by
// value. The zero value is the canonical empty symbol.
//
// Syms are comparable: == is record identity, which for symbols of one
// pool coincides with content equality. Sym is usable as a map key.
type Sym struct {
	ptr unsafe.Pointer // nil for the empty symbol
}

// Size returns the number of content bytes.
func (s Sym) Size() int {
	if s.ptr == nil {
		return 0
	}
	return *(*int)(s.ptr)
}

// Empty reports whether s is the empty symbol.
func (s Sym) Empty() bool {
	return s.ptr == nil
}

// At returns the i-th content byte. It panics if i is out of range.
func (s Sym) At(i int) byte {
	if i < 0 || i >= s.Size() {
		panic("sym: index out of range")
	}
	return *(*byte)(unsafe.Add(s.ptr, hdrSize+uintptr(i)))
}

// Front returns the first content byte.
func (s Sym) Front() byte {
	return s.At(0)
}

// Back returns the last content byte.
func (s Sym) Back() byte {
	return s.At(s.Size() - 1)
}

// All iterates over the content bytes in order.
func (s Sym) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, n := 0, s.Size(); i < n; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Backward iterates over the content bytes from last to first.
func (s Sym) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := s.Size() - 1; i >= 0; i-- {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Compare orders two symbols by lexicographic byte comparison of their
// contents. Use == for equality instead; it is O(1).
func (s Sym) Compare(other Sym) int {
	return strings.Compare(s.View(), other.View())
}

// CompareByte orders a symbol against a single byte. A one-byte symbol
// compares as that byte; a longer symbol whose first byte equals c is
// greater, since a string sorts after its own prefix. The empty symbol is
// less than every byte.
func (s Sym) CompareByte(c byte) int {
	if s.ptr == nil {
		return -1
	}

	d := 0
	if f := s.Front(); f < c {
		d = -1
	} else if f > c {
		d = 1
	}

	if s.Size() == 1 || d != 0 {
		return d
	}
	return 1
}

// View returns the contents as a string without copying. The string
// aliases the pool's arena and is valid for the lifetime of the pool.
func (s Sym) View() string {
	if s.ptr == nil {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Add(s.ptr, hdrSize)), s.Size())
}

// String returns an owned copy of the contents.
func (s Sym) String() string {
	return strings.Clone(s.View())
}
