// Package arena implements a page-based bump allocator.
//
// # Overview
//
// An Arena pre-allocates pages (1 MiB by default) and serves allocation
// requests by advancing a cursor through the current page. When a page
// runs out, the next page is allocated; a single oversized request gets a
// page sized to fit it. Individual allocations are never freed. All pages
// are released at once by Free().
//
// Pointers returned by the arena are stable: pages are never moved or
// resized in place.
//
// # Rollback
//
// As the one exception to bulk-only release, the most recent allocations
// can be undone:
//
//	s := a.State()
//	b := a.Alloc(n)
//	if notNeeded {
//		a.Deallocate(s)
//	}
//
// Deallocate restores the cursor only if no new page was created since the
// snapshot; otherwise it silently does nothing. It must only be used to
// undo the most recent allocations: rolling back past an unrelated
// caller's allocation corrupts it.
//
// # Typed Allocation
//
// Alloc[T] and New[T] align the cursor to the element type first. T must
// not contain Go pointers: pages are untyped byte memory, so pointers
// stored there are invisible to the garbage collector.
//
// # Off-Heap Pages
//
// With WithOffHeap(), pages are anonymous memory mappings outside the Go
// heap, removing GC scan pressure for large arenas. Free() unmaps them.
//
// # Thread Safety
//
// An Arena performs no internal synchronization. Concurrent use from
// multiple goroutines without external locking is undefined.
package arena
