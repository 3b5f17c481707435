package loc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPos(t *testing.T) {
	assert.False(t, Pos{}.IsSet())
	assert.True(t, Pos{Row: 1}.IsSet())

	assert.Equal(t, "<unset>", Pos{}.String())
	assert.Equal(t, "3", Pos{Row: 3}.String())
	assert.Equal(t, "3:14", Pos{Row: 3, Col: 14}.String())
}

func TestLoc(t *testing.T) {
	l := Loc{
		Path:  "main.lx",
		Begin: Pos{Row: 2, Col: 5},
		Finis: Pos{Row: 2, Col: 9},
	}

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "main.lx:2:5-2:9", l.String())
		assert.Equal(t, "2:5-2:9", Loc{Begin: l.Begin, Finis: l.Finis}.String())
		assert.Equal(t, "main.lx:2:5", l.AtBegin().String())
	})

	t.Run("collapse", func(t *testing.T) {
		assert.Equal(t, l.Begin, l.AtBegin().Finis)
		assert.Equal(t, l.Finis, l.AtFinis().Begin)
	})

	t.Run("join", func(t *testing.T) {
		tail := Loc{Path: "main.lx", Begin: Pos{Row: 4, Col: 1}, Finis: Pos{Row: 4, Col: 7}}
		joined := l.Join(tail)

		assert.Equal(t, l.Begin, joined.Begin)
		assert.Equal(t, tail.Finis, joined.Finis)
		assert.Equal(t, "main.lx", joined.Path)
	})

	t.Run("is set", func(t *testing.T) {
		assert.True(t, l.IsSet())
		assert.False(t, Loc{}.IsSet())
	})
}
