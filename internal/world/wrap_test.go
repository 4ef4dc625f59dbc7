package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestFract(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{3.75, 0.75},
		{-0.25, 0.75},
		{-3.5, 0.5},
		{-2, 0},
		{-1e-17, 0},
	}
	for _, tc := range tests {
		got := Fract(tc.in)
		assert.InDelta(t, tc.want, got, eps, "Fract(%v)", tc.in)
		assert.True(t, got >= 0 && got < 1, "Fract(%v) = %v out of [0,1)", tc.in, got)
	}
}

func TestNewScroll(t *testing.T) {
	s := NewScroll(Size, -Size*0.25)
	assert.Equal(t, -1.0, s.MapIndex())
	assert.InDelta(t, 0.75, s.CameraFraction(), eps)
	assert.Equal(t, -Size*0.25, s.CameraX())

	assert.Equal(t, Size, NewScroll(0, 0).Size(), "non-positive size falls back to Size")
}

func TestScrollHysteresis(t *testing.T) {
	s := NewScroll(Size, 0)

	assert.InDelta(t, Size*0.49, s.Update(Size*0.49), eps)
	assert.InDelta(t, -Size*0.49, s.Update(Size*0.51), eps)
	assert.InDelta(t, -Size*0.49, s.Update(-Size*0.49), eps)
	assert.InDelta(t, Size*0.49, s.Update(-Size*0.51), eps)
}

func TestScrollNearestRepresentation(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 2000; i++ {
		camera := (rng.Float64()*2 - 1) * Size * 20
		x := (rng.Float64()*2 - 1) * Size * 20
		s := NewScroll(Size, camera)

		got := s.Update(x)
		require.LessOrEqual(t, math.Abs(got-camera), Size/2+eps,
			"camera=%v x=%v update=%v", camera, x, got)

		// Same place in the world
		assert.InDelta(t, 0, math.Abs(math.Remainder(got-x, Size)), 1e-3,
			"camera=%v x=%v update=%v", camera, x, got)

		// Idempotent
		assert.InDelta(t, got, s.Update(got), 1e-6, "camera=%v x=%v", camera, x)
	}
}

func TestScrollDelta(t *testing.T) {
	s := NewScroll(Size, 0)
	assert.InDelta(t, 10.0, s.Delta(0, 10), eps)
	assert.InDelta(t, -10.0, s.Delta(5, Size-5), eps)
	assert.InDelta(t, 10.0, s.Delta(Size-5, 5), eps)
}

func TestVisible(t *testing.T) {
	assert.True(t, Visible(100, 0, 300))
	assert.True(t, Visible(150, 0, 300), "right edge is visible")
	assert.True(t, Visible(-150, 0, 300), "left edge is visible")
	assert.False(t, Visible(150.001, 0, 300))
	assert.False(t, Visible(-200, 0, 300))
}

func TestMinimap(t *testing.T) {
	camera := 1234.0
	m := NewMinimap(Size, camera, 720)

	assert.InDelta(t, 0.5, m.X(camera), eps, "camera sits in the middle")
	assert.InDelta(t, 0.5, m.X(camera+Size*3), eps, "wrapped copies coincide")
	assert.InDelta(t, 0.75, m.X(camera+Size*0.25), eps)
	assert.InDelta(t, 0.25, m.X(camera-Size*0.25), eps)
	assert.InDelta(t, 0.5, m.Y(360), eps)
	assert.Equal(t, 0.0, NewMinimap(Size, 0, 0).Y(100))
}
