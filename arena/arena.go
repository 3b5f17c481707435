package arena

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lexbase/internal/mmap"
	"github.com/hupe1980/lexbase/resource"
)

const (
	// DefaultPageSize is the default size of a page (1 MiB).
	DefaultPageSize = 1024 * 1024
)

// ErrMemoryLimit is the panic value when a configured resource.Controller
// denies a page grant. Resource exhaustion is fatal, not recoverable.
var ErrMemoryLimit = errors.New("arena: memory limit exceeded")

// State is a snapshot of the arena cursor: the page count and the offset
// within the current page. It is a pure value, not an owning handle.
type State struct {
	pages int
	index int
}

// Stats tracks arena memory usage.
type Stats struct {
	PagesAllocated uint64 // Total pages ever created
	BytesReserved  uint64 // Total page memory held
	BytesUsed      uint64 // Bytes handed out by Alloc
	BytesWasted    uint64 // Alignment padding
	TotalAllocs    uint64 // Cumulative allocation count
}

type page struct {
	buf     []byte
	mapping *mmap.Mapping // non-nil for off-heap pages
}

// Arena is a page-based bump allocator. Not goroutine-safe.
type Arena struct {
	pages    []page
	pageSize int
	index    int // offset within the current (= last) page
	offHeap  bool
	ctrl     *resource.Controller
	stats    Stats
	freed    bool
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithPageSize sets the page size. Values <= 0 keep the default.
func WithPageSize(size int) Option {
	return func(a *Arena) {
		if size > 0 {
			a.pageSize = size
		}
	}
}

// WithOffHeap backs pages by anonymous memory mappings instead of the Go
// heap. Use for large arenas where GC scan pressure matters.
func WithOffHeap() Option {
	return func(a *Arena) {
		a.offHeap = true
	}
}

// WithController draws page memory from the given budget. A denied grant
// panics with ErrMemoryLimit.
func WithController(ctrl *resource.Controller) Option {
	return func(a *Arena) {
		a.ctrl = ctrl
	}
}

// NewArena creates an empty Arena. Pages are allocated lazily on first use.
func NewArena(opts ...Option) *Arena {
	a := &Arena{pageSize: DefaultPageSize}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Alloc returns n bytes of fresh, stably-addressed memory from the arena.
// The bytes are not guaranteed to be zeroed (a rollback may hand the same
// range out again). Returns nil if n <= 0.
func (a *Arena) Alloc(n int) []byte {
	a.panicIfFreed()
	if n <= 0 {
		return nil
	}

	if len(a.pages) == 0 || a.index+n > len(a.pages[len(a.pages)-1].buf) {
		a.grow(n)
	}

	buf := a.pages[len(a.pages)-1].buf
	b := buf[a.index : a.index+n : a.index+n]
	a.index += n

	a.stats.BytesUsed += uint64(n)
	a.stats.TotalAllocs++
	return b
}

// Align rounds the cursor up to the next multiple of align, which must be
// a power of two.
func (a *Arena) Align(align int) {
	a.panicIfFreed()
	if align <= 0 || align&(align-1) != 0 {
		panic("arena: alignment must be a power of two")
	}

	aligned := (a.index + align - 1) &^ (align - 1)
	a.stats.BytesWasted += uint64(aligned - a.index)
	a.index = aligned
}

// State captures the current page count and cursor offset.
func (a *Arena) State() State {
	a.panicIfFreed()
	return State{pages: len(a.pages), index: a.index}
}

// Deallocate rolls the cursor back to the snapshot, undoing the most
// recent allocations. If a new page was created since the snapshot, it is
// a silent no-op: rollback never crosses a page boundary.
//
// Only use this to undo allocations you made yourself since taking the
// snapshot, with no interleaved allocation by anyone else.
func (a *Arena) Deallocate(s State) {
	a.panicIfFreed()
	if s.pages != len(a.pages) {
		return // don't care
	}
	if delta := a.index - s.index; delta > 0 {
		a.stats.BytesUsed -= uint64(delta)
	}
	a.index = s.index
}

// Free releases all pages at once. Off-heap pages are unmapped and any
// budget is returned to the controller. No per-object finalizers run; see
// Construct for values needing finalization. Free is idempotent, but any
// other use of the arena afterwards panics.
func (a *Arena) Free() {
	if a.freed {
		return
	}

	for i := range a.pages {
		if m := a.pages[i].mapping; m != nil {
			_ = m.Close()
		}
		a.pages[i] = page{}
	}
	a.ctrl.ReleaseMemory(int64(a.stats.BytesReserved)) //nolint:gosec // reserved bytes fit in int64

	a.pages = nil
	a.index = 0
	a.freed = true
	a.stats.BytesReserved = 0
	a.stats.BytesUsed = 0
	a.stats.BytesWasted = 0
}

// Swap exchanges the entire state of two arenas.
func Swap(a, b *Arena) {
	*a, *b = *b, *a
}

// PageSize returns the configured default page size.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// NumPages returns the number of pages currently held.
func (a *Arena) NumPages() int {
	return len(a.pages)
}

// Stats returns a snapshot of arena statistics.
func (a *Arena) Stats() Stats {
	return a.stats
}

func (a *Arena) String() string {
	return fmt.Sprintf(
		"Arena{pages: %d, reserved: %d B, used: %d B, wasted: %d B, allocs: %d}",
		len(a.pages),
		a.stats.BytesReserved,
		a.stats.BytesUsed,
		a.stats.BytesWasted,
		a.stats.TotalAllocs,
	)
}

// grow appends a page of at least min bytes and resets the cursor.
func (a *Arena) grow(min int) {
	size := a.pageSize
	if min > size {
		size = min
	}

	if !a.ctrl.TryAcquireMemory(int64(size)) {
		panic(fmt.Errorf("%w: page of %d bytes denied", ErrMemoryLimit, size))
	}

	var pg page
	if a.offHeap {
		m, err := mmap.MapAnon(size)
		if err != nil {
			a.ctrl.ReleaseMemory(int64(size))
			panic(fmt.Errorf("arena: anonymous mapping failed: %w", err))
		}
		pg = page{buf: m.Bytes(), mapping: m}
	} else {
		pg = page{buf: make([]byte, size)}
	}

	a.pages = append(a.pages, pg)
	a.index = 0

	a.stats.PagesAllocated++
	a.stats.BytesReserved += uint64(size)
}

func (a *Arena) panicIfFreed() {
	if a.freed {
		panic("arena: use after Free")
	}
}
