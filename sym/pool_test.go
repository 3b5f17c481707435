package sym

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lexbase/testutil"
)

func TestPool_Intern(t *testing.T) {
	t.Run("same content yields the same handle", func(t *testing.T) {
		p := NewPool()
		defer p.Free()

		a := p.Sym("lexer")
		b := p.Sym("lexer")
		c := p.SymBytes([]byte("lexer"))

		assert.Equal(t, a, b)
		assert.Equal(t, a, c)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("different content yields different handles", func(t *testing.T) {
		p := NewPool()
		defer p.Free()

		a := p.Sym("foo")
		b := p.Sym("bar")

		assert.NotEqual(t, a, b)
		assert.Equal(t, 2, p.Len())
	})

	t.Run("hit allocates no record", func(t *testing.T) {
		p := NewPool()
		defer p.Free()

		p.Sym("once")
		used := p.Stats().BytesUsed

		p.Sym("once")
		p.SymBytes([]byte("once"))
		assert.Equal(t, used, p.Stats().BytesUsed)
	})

	t.Run("records survive page growth", func(t *testing.T) {
		p := NewPool()
		defer p.Free()

		rng := testutil.NewRNG(42)
		inputs := rng.Idents(50_000, 24)

		byContent := make(map[string]Sym, len(inputs))
		for _, in := range inputs {
			s := p.Sym(in)
			if prev, ok := byContent[in]; ok {
				require.Equal(t, prev, s)
			}
			byContent[in] = s
		}

		for content, s := range byContent {
			require.Equal(t, content, s.View())
		}
		assert.Equal(t, len(byContent), p.Len())
	})

	t.Run("symbols usable as map keys", func(t *testing.T) {
		p := NewPool()
		defer p.Free()

		counts := map[Sym]int{}
		for _, w := range []string{"a", "b", "a", "c", "a"} {
			counts[p.Sym(w)]++
		}

		assert.Equal(t, 3, counts[p.Sym("a")])
		assert.Equal(t, 1, counts[p.Sym("b")])
	})
}

func TestPool_All(t *testing.T) {
	p := NewPool()
	defer p.Free()

	words := []string{"if", "else", "while", "if", "return"}
	for _, w := range words {
		p.Sym(w)
	}

	var got []string
	for s := range p.All() {
		got = append(got, s.View())
	}
	assert.Equal(t, []string{"if", "else", "while", "return"}, got, "insertion order, duplicates collapsed")
}

func TestPool_Swap(t *testing.T) {
	p1 := NewPool()
	p2 := NewPool()
	defer p1.Free()
	defer p2.Free()

	a := p1.Sym("alpha")
	p2.Sym("beta")
	p2.Sym("gamma")

	Swap(p1, p2)

	assert.Equal(t, 2, p1.Len())
	assert.Equal(t, 1, p2.Len())
	assert.Equal(t, a, p2.Sym("alpha"), "records moved with the pool")
}

func TestPool_ShardedInterning(t *testing.T) {
	// One pool per goroutine, merged out-of-band: the supported way to
	// intern concurrently.
	const shards = 4

	rng := testutil.NewRNG(7)
	inputs := rng.Idents(8_000, 16)

	pools := make([]*Pool, shards)
	for i := range pools {
		pools[i] = NewPool()
		defer pools[i].Free()
	}

	var g errgroup.Group
	for i := 0; i < shards; i++ {
		g.Go(func() error {
			p := pools[i]
			for _, in := range inputs {
				if s := p.Sym(in); s.View() != in {
					return fmt.Errorf("shard %d: got %q, want %q", i, s.View(), in)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Merge by content: every shard interned the same set.
	for i := 1; i < shards; i++ {
		require.Equal(t, pools[0].Len(), pools[i].Len())
	}
	for s := range pools[0].All() {
		merged := pools[1].Sym(s.View())
		require.Equal(t, s.View(), merged.View())
	}
}

func BenchmarkPool_Sym(b *testing.B) {
	rng := testutil.NewRNG(1)
	inputs := rng.Idents(4096, 16)

	b.Run("mixed hit and miss", func(b *testing.B) {
		p := NewPool()
		defer p.Free()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p.Sym(inputs[i%len(inputs)])
		}
	})

	b.Run("all hits", func(b *testing.B) {
		p := NewPool()
		defer p.Free()
		for _, in := range inputs {
			p.Sym(in)
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p.Sym(inputs[i%len(inputs)])
		}
	})
}
