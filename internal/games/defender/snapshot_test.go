package defender

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDescribesWorld(t *testing.T) {
	w := newTestWorld(t, rand.New(rand.NewSource(21)))
	w.Step(dt, Controls{})
	w.Step(dt, Controls{Shoot: true})

	s := w.Snapshot()

	require.NotNil(t, s.Player)
	assert.Equal(t, 1.0, s.Player.Facing)
	assert.Equal(t, 5, s.Wave)
	assert.Equal(t, 5, s.Active)
	assert.Len(t, s.Enemies, 5)
	assert.Len(t, s.Persons, 8)
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, "laser", s.Projectiles[0].Kind)
	assert.Equal(t, "running", s.Mode)
	for _, p := range s.Persons {
		assert.Equal(t, "grounded", p.State)
	}
}

func TestSnapshotEncoding(t *testing.T) {
	w := newTestWorld(t, rand.New(rand.NewSource(22)))
	for i := 0; i < 30; i++ {
		w.Step(dt, Controls{Right: true, Shoot: i%10 == 0})
	}
	s := w.Snapshot()

	data, err := EncodeSnapshot(s)
	require.NoError(t, err)
	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xc1})
	assert.Error(t, err)
}
