//go:build !unix

package mmap

// Fallback for platforms without anonymous mmap support: plain heap
// allocation. The memory is GC-managed, so "unmapping" is a no-op.

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	data := make([]byte, size)
	return data, func([]byte) error { return nil }, nil
}
