package hit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
)

type laser struct{}

func positions(m map[ecs.Entity]core.Vec2) func(ecs.Entity) (core.Vec2, bool) {
	return func(e ecs.Entity) (core.Vec2, bool) {
		p, ok := m[e]
		return p, ok
	}
}

func striker(id ecs.Entity, x, y float64) Striker[laser] {
	return Striker[laser]{ID: id, Box: core.NewBox(core.V(x, y), core.V(10, 10))}
}

func TestDetectFirstHitWins(t *testing.T) {
	table := NewTable[laser]()
	table.Add(1, core.V(20, 20))
	pos := positions(map[ecs.Entity]core.Vec2{1: core.V(0, 0)})

	strikers := []Striker[laser]{
		striker(10, 100, 100), // miss
		striker(11, 5, 0),
		striker(12, -5, 0),
		striker(13, 0, 5),
	}

	n := table.Detect(pos, strikers, nil)
	assert.Equal(t, 1, n)
	by, ok := table.HitBy(1)
	require.True(t, ok)
	assert.Equal(t, ecs.Entity(11), by)

	// A second pass in the same frame does not overwrite
	table.Detect(pos, []Striker[laser]{striker(12, 0, 0)}, nil)
	by, _ = table.HitBy(1)
	assert.Equal(t, ecs.Entity(11), by)

	table.Clear()
	_, ok = table.HitBy(1)
	assert.False(t, ok, "hit must be cleared for the next frame")
	assert.True(t, table.Has(1), "clearing keeps the target")
}

func TestDetectViewportClip(t *testing.T) {
	table := NewTable[laser]()
	table.Add(1, core.V(10, 10))
	pos := positions(map[ecs.Entity]core.Vec2{1: core.V(120, 0)})
	view := core.NewBox(core.V(0, 0), core.V(200, 200)) // x in [-100, 100]

	// A long striker reaching the target only with its off-screen part
	long := Striker[laser]{ID: 5, Box: core.NewBox(core.V(60, 0), core.V(140, 4))}

	assert.Equal(t, 0, table.Detect(pos, []Striker[laser]{long}, &view))
	assert.Equal(t, 1, table.Detect(pos, []Striker[laser]{long}, nil))
}

func TestDetectSkipsUnknownAndSelf(t *testing.T) {
	table := NewTable[laser]()
	table.Add(1, core.V(10, 10))
	table.Add(2, core.V(10, 10))
	pos := positions(map[ecs.Entity]core.Vec2{2: core.V(0, 0)})

	n := table.Detect(pos, []Striker[laser]{striker(2, 0, 0)}, nil)
	assert.Equal(t, 0, n, "entity 1 has no position and entity 2 cannot hit itself")
}

func TestHitsAndResize(t *testing.T) {
	table := NewTable[laser]()
	table.Add(1, core.V(10, 10))
	table.Add(2, core.V(10, 10))
	pos := positions(map[ecs.Entity]core.Vec2{1: core.V(0, 0), 2: core.V(50, 0)})

	table.Detect(pos, []Striker[laser]{striker(7, 50, 0), striker(8, 0, 0)}, nil)
	assert.Equal(t, []Pair{{Target: 1, Striker: 8}, {Target: 2, Striker: 7}}, table.Hits())

	table.Resize(1, core.V(2, 2))
	b, ok := table.Bound(1)
	require.True(t, ok)
	assert.Equal(t, core.V(2, 2), b)
	_, hit := table.HitBy(1)
	assert.False(t, hit)

	table.Remove(2)
	assert.Equal(t, 1, table.Len())
}

func TestStrikes(t *testing.T) {
	a := core.NewBox(core.V(0, 0), core.V(4, 4))
	b := core.NewBox(core.V(3, 0), core.V(4, 4))
	assert.True(t, Strikes(a, b, nil))

	far := core.NewBox(core.V(100, 100), core.V(4, 4))
	assert.False(t, Strikes(a, b, &far))
}
