// Package world maps the unbounded x axis of a repeating world onto the
// representation nearest to the camera.
//
// The world repeats every Size units. Every mobile entity is re-projected
// once per frame with Scroll.Update so that distances and interpolation
// near the camera never cross the seam.
package world

import "math"

const (
	// Segments is the number of terrain segments in one world repetition.
	Segments = 499
	// SegmentLength is the width of one terrain segment in world units.
	SegmentLength = 10.0
	// Size is the world length: x and x+Size are the same place.
	Size = Segments * SegmentLength
)

// Fract returns the fractional part of x in [0, 1), also for negative x.
func Fract(x float64) float64 {
	f := x - math.Trunc(x)
	if f < 0 {
		f++
	}
	// -1e-17 + 1 rounds to exactly 1.
	if f >= 1 {
		f = 0
	}
	return f
}

// Scroll is the wrap context for one frame, built from the camera x.
type Scroll struct {
	size           float64
	mapIndex       float64
	cameraFraction float64
	cameraX        float64
}

// NewScroll builds the wrap context for a world of the given size.
// A non-positive size falls back to Size.
func NewScroll(size, cameraX float64) Scroll {
	if size <= 0 {
		size = Size
	}
	n := cameraX / size
	return Scroll{
		size:           size,
		mapIndex:       math.Floor(n),
		cameraFraction: Fract(n),
		cameraX:        cameraX,
	}
}

// Update returns the representation of x that lies within half a world
// length of the camera. Update is idempotent.
func (s Scroll) Update(x float64) float64 {
	xf := Fract(x / s.size)
	shift := 0.0
	switch {
	case xf > s.cameraFraction+0.5:
		shift = -1
	case xf < s.cameraFraction-0.5:
		shift = 1
	}
	return (xf + s.mapIndex + shift) * s.size
}

// MapIndex is the index of the world repetition holding the camera.
func (s Scroll) MapIndex() float64 { return s.mapIndex }

// CameraFraction is the camera position within its repetition, in [0, 1).
func (s Scroll) CameraFraction() float64 { return s.cameraFraction }

// CameraX is the camera x the context was built from.
func (s Scroll) CameraX() float64 { return s.cameraX }

// Size is the world length.
func (s Scroll) Size() float64 { return s.size }

// Delta returns the signed x distance from a to b along the shorter way
// around the world.
func (s Scroll) Delta(a, b float64) float64 {
	d := math.Mod(b-a, s.size)
	switch {
	case d > s.size/2:
		d -= s.size
	case d < -s.size/2:
		d += s.size
	}
	return d
}

// Visible reports whether x lies inside a window of the given width
// centered on the camera. Both edges count as inside.
func Visible(x, cameraX, width float64) bool {
	return math.Abs(x-cameraX) <= width*0.5
}
