package sym

import (
	"iter"
	"unsafe"

	"github.com/hupe1980/lexbase/arena"
	"github.com/hupe1980/lexbase/container"
)

// Pool is the hash set all interned strings live in. It owns an arena
// holding the records and a content-keyed index into them.
//
// A Pool must not be copied: two copies would intern the same content
// into diverging record sets. Move it as a pointer; Swap exchanges the
// entire state of two pools.
type Pool struct {
	strings *arena.Arena
	pool    map[string]Sym
	index   container.Vector[Sym]
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	a := arena.NewArena()
	return &Pool{
		strings: a,
		pool:    make(map[string]Sym),
		// The index stores Syms in the record arena. Their hidden
		// pointers target pages the pool itself keeps reachable, so the
		// pointer-free rule for arena elements is not violated in spirit.
		index: container.NewVector(arena.NewAllocator[Sym](a)),
	}
}

// Sym interns s and returns its canonical handle. The empty string
// interns to the empty symbol without touching the pool.
//
// The content is probed against the index first; only a confirmed miss
// copies the bytes into the record arena. A hit allocates nothing.
func (p *Pool) Sym(s string) Sym {
	if len(s) == 0 {
		return Sym{}
	}
	if sym, ok := p.pool[s]; ok {
		return sym
	}
	return p.insert(s)
}

// SymBytes interns the byte sequence b. A nil or empty slice interns to
// the empty symbol.
func (p *Pool) SymBytes(b []byte) Sym {
	if len(b) == 0 {
		return Sym{}
	}
	if sym, ok := p.pool[string(b)]; ok { // conversion is free for map probes
		return sym
	}
	return p.insert(string(b))
}

// Len returns the number of interned symbols, not counting the empty
// symbol.
func (p *Pool) Len() int {
	return len(p.pool)
}

// All iterates over the interned symbols in insertion order.
func (p *Pool) All() iter.Seq[Sym] {
	return func(yield func(Sym) bool) {
		for _, s := range p.index.All() {
			if !yield(s) {
				return
			}
		}
	}
}

// Free releases the record arena. Every Sym obtained from the pool
// dangles afterwards; any further use of the pool panics.
func (p *Pool) Free() {
	p.strings.Free()
	p.pool = nil
}

// Stats returns the record arena's statistics.
func (p *Pool) Stats() arena.Stats {
	return p.strings.Stats()
}

// Swap exchanges the entire state of two pools.
func Swap(p1, p2 *Pool) {
	*p1, *p2 = *p2, *p1
}

// insert writes a fresh record for s and registers it. Caller guarantees
// s is non-empty and not yet interned.
func (p *Pool) insert(s string) Sym {
	p.strings.Align(int(hdrAlign))
	b := p.strings.Alloc(int(hdrSize) + len(s) + 1)

	hp := unsafe.Pointer(&b[0])
	*(*int)(hp) = len(s)
	copy(b[hdrSize:], s)
	b[int(hdrSize)+len(s)] = 0 // NUL sentinel, excluded from the length

	sym := Sym{ptr: hp}
	p.pool[sym.View()] = sym // the key aliases the record bytes
	p.index.Append(sym)
	return sym
}
