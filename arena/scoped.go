package arena

// Owned is a handle to a value placed inside an arena. Closing it runs
// the value's finalizer but never frees memory; the backing bytes are
// reclaimed only when the whole arena is freed.
type Owned[T any] struct {
	v      *T
	fin    func(*T)
	closed bool
}

// Construct places v inside the arena and returns an owning handle whose
// sole cleanup action is to invoke fin. fin may be nil for values that
// need no finalization.
//
// T must not contain Go pointers; see the package documentation.
func Construct[T any](a *Arena, v T, fin func(*T)) *Owned[T] {
	p := New[T](a)
	*p = v
	return &Owned[T]{v: p, fin: fin}
}

// Value returns the arena-resident value. It remains valid after Close;
// only the finalizer has run, the memory stays until the arena is freed.
func (o *Owned[T]) Value() *T {
	return o.v
}

// Close runs the finalizer exactly once. It never releases memory.
func (o *Owned[T]) Close() error {
	if !o.closed {
		o.closed = true
		if o.fin != nil {
			o.fin(o.v)
		}
	}
	return nil
}
