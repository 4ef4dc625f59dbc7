package world

// Minimap projects world positions onto a unit square that shows the whole
// world with the camera in the middle.
type Minimap struct {
	size    float64
	windowH float64
	offset  float64
}

// NewMinimap builds the projection for the current camera.
func NewMinimap(size, cameraX, windowH float64) Minimap {
	if size <= 0 {
		size = Size
	}
	return Minimap{
		size:    size,
		windowH: windowH,
		offset:  Fract(-(cameraX/size + 0.5)),
	}
}

// X returns the horizontal minimap position in [0, 1).
// The camera itself maps to 0.5.
func (m Minimap) X(x float64) float64 {
	return Fract(x/m.size + m.offset)
}

// Y returns the vertical minimap position, 0 at the ground.
func (m Minimap) Y(y float64) float64 {
	if m.windowH <= 0 {
		return 0
	}
	return y / m.windowH
}
