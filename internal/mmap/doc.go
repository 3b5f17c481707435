// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings outside the Go garbage
// collector's control. The arena allocator uses these to obtain large pages
// that never add to GC scan pressure.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	page := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Other platforms: falls back to ordinary heap allocation
//
// # Thread Safety
//
// Close() is idempotent and protected by an atomic flag. Callers must
// ensure no goroutine accesses Bytes() after Close() returns.
package mmap
