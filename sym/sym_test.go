package sym

import (
	"slices"
	"sort"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSym_Empty(t *testing.T) {
	p := NewPool()
	defer p.Free()

	forms := map[string]Sym{
		"zero value":   {},
		"empty string": p.Sym(""),
		"nil bytes":    p.SymBytes(nil),
		"empty bytes":  p.SymBytes([]byte{}),
	}

	for name, s := range forms {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.Empty())
			assert.Zero(t, s.Size())
			assert.Equal(t, "", s.View())
			assert.Equal(t, "", s.String())
			assert.Equal(t, Sym{}, s, "all empty forms are the one canonical symbol")
		})
	}

	assert.Zero(t, p.Len(), "empty content never materializes a record")
}

func TestSym_Access(t *testing.T) {
	p := NewPool()
	defer p.Free()

	s := p.Sym("hello")

	assert.Equal(t, 5, s.Size())
	assert.False(t, s.Empty())
	assert.Equal(t, byte('h'), s.Front())
	assert.Equal(t, byte('o'), s.Back())
	assert.Equal(t, byte('e'), s.At(1))
	assert.Equal(t, "hello", s.View())
	assert.Equal(t, "hello", s.String())

	assert.Panics(t, func() { s.At(5) })
	assert.Panics(t, func() { s.At(-1) })
	assert.Panics(t, func() { Sym{}.At(0) })
}

func TestSym_Iteration(t *testing.T) {
	p := NewPool()
	defer p.Free()

	s := p.Sym("abc")

	var fwd []byte
	for i, b := range s.All() {
		assert.Equal(t, s.At(i), b)
		fwd = append(fwd, b)
	}
	assert.Equal(t, []byte("abc"), fwd)

	var bwd []byte
	for _, b := range s.Backward() {
		bwd = append(bwd, b)
	}
	assert.Equal(t, []byte("cba"), bwd)

	assert.Empty(t, slices.Collect(func(yield func(byte) bool) {
		for _, b := range (Sym{}).All() {
			if !yield(b) {
				return
			}
		}
	}))
}

func TestSym_Compare(t *testing.T) {
	p := NewPool()
	defer p.Free()

	inputs := []string{"b", "a", "ab", "aa", "", "z", "abc"}
	syms := make([]Sym, len(inputs))
	for i, in := range inputs {
		syms[i] = p.Sym(in)
	}

	// Sorting by Sym comparison must agree with sorting the inputs.
	sort.Slice(syms, func(i, j int) bool { return syms[i].Compare(syms[j]) < 0 })
	sorted := slices.Clone(inputs)
	sort.Strings(sorted)

	for i, s := range syms {
		assert.Equal(t, sorted[i], s.View())
	}
}

func TestSym_CompareByte(t *testing.T) {
	p := NewPool()
	defer p.Free()

	tests := []struct {
		name string
		sym  string
		c    byte
		want int
	}{
		{name: "single byte equal", sym: "a", c: 'a', want: 0},
		{name: "single byte less", sym: "a", c: 'b', want: -1},
		{name: "single byte greater", sym: "b", c: 'a', want: 1},
		{name: "prefix sorts before longer string", sym: "ab", c: 'a', want: 1},
		{name: "multi byte first byte decides", sym: "ba", c: 'c', want: -1},
		{name: "multi byte greater", sym: "ca", c: 'b', want: 1},
		{name: "empty is less than everything", sym: "", c: 0, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Sym(tt.sym).CompareByte(tt.c))
		})
	}
}

func TestSym_ViewAliasesRecord(t *testing.T) {
	p := NewPool()
	defer p.Free()

	s := p.Sym("aliased")
	v1 := s.View()
	v2 := s.View()

	require.Equal(t, v1, v2)
	assert.Same(t, unsafe.StringData(v1), unsafe.StringData(v2), "View is zero-copy")
}
